package handlers

import (
	"time"

	"dataagent/cache"
	"dataagent/db"
	"dataagent/service"
	"dataagent/session"
)

// @title           Data Agent API
// @version         1.0
// @description     Data Agent API - Ask business questions in plain language and get an answer, the numbers it mentions, and a chart suggestion
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:9090
// @BasePath  /

// @schemes   http https

type Handlers struct {
	db       *db.DB
	cache    *cache.Cache
	queries  *service.QueryService
	store    *session.Store
	results  *service.ResultsStorage
	provider string
	now      func() time.Time
}

func New(db *db.DB, answerCache *cache.Cache, queries *service.QueryService, store *session.Store, results *service.ResultsStorage, provider string) *Handlers {
	return &Handlers{
		db:       db,
		cache:    answerCache,
		queries:  queries,
		store:    store,
		results:  results,
		provider: provider,
		now:      time.Now,
	}
}

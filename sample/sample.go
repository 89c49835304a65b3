// Package sample provides fixed business datasets for trying out tables and charts without a
// model round-trip.
package sample

import (
	"sort"

	"dataagent/table"
)

type dataset struct {
	columns []string
	rows    []table.Row
}

var datasets = map[string]dataset{
	"topProducts": {
		columns: []string{"product", "revenue"},
		rows: []table.Row{
			{"product": "Smart TVs", "revenue": 2500000},
			{"product": "Wireless Headphones", "revenue": 1800000},
			{"product": "Laptop Computers", "revenue": 1650000},
			{"product": "Smartphones", "revenue": 1450000},
			{"product": "Fitness Trackers", "revenue": 980000},
		},
	},
	"retentionByRegion": {
		columns: []string{"region", "retention_rate"},
		rows: []table.Row{
			{"region": "Northeast", "retention_rate": 78},
			{"region": "West", "retention_rate": 72},
			{"region": "Midwest", "retention_rate": 65},
			{"region": "South", "retention_rate": 59},
		},
	},
	"revenueGrowth": {
		columns: []string{"department", "revenue_2023", "revenue_2022", "growth_percentage"},
		rows: []table.Row{
			{"department": "Technology", "revenue_2023": 8200000, "revenue_2022": 6450000, "growth_percentage": 27.1},
			{"department": "Beauty", "revenue_2023": 4100000, "revenue_2022": 3560000, "growth_percentage": 15.2},
			{"department": "Home Goods", "revenue_2023": 5650000, "revenue_2022": 5040000, "growth_percentage": 12.1},
			{"department": "Apparel", "revenue_2023": 7200000, "revenue_2022": 6650000, "growth_percentage": 8.3},
			{"department": "Outdoors", "revenue_2023": 3180000, "revenue_2022": 3080000, "growth_percentage": 3.2},
			{"department": "Food & Beverage", "revenue_2023": 2850000, "revenue_2022": 2910000, "growth_percentage": -2.1},
		},
	},
	"marketingROI": {
		columns: []string{"channel", "spend_amount", "roi_percent", "performance_category"},
		rows: []table.Row{
			{"channel": "Social Media", "spend_amount": 450000, "roi_percent": 320, "performance_category": "High Performer"},
			{"channel": "Email Marketing", "spend_amount": 120000, "roi_percent": 275, "performance_category": "High Performer"},
			{"channel": "Search Engine", "spend_amount": 380000, "roi_percent": 210, "performance_category": "High Performer"},
			{"channel": "Content Marketing", "spend_amount": 250000, "roi_percent": 175, "performance_category": "Average"},
			{"channel": "Influencer", "spend_amount": 310000, "roi_percent": 160, "performance_category": "Average"},
			{"channel": "Television", "spend_amount": 820000, "roi_percent": 95, "performance_category": "Underperformer"},
			{"channel": "Radio", "spend_amount": 280000, "roi_percent": 85, "performance_category": "Underperformer"},
			{"channel": "Print", "spend_amount": 190000, "roi_percent": 65, "performance_category": "Underperformer"},
		},
	},
	"salesForecast": {
		columns: []string{"month", "previous_sales", "forecasted_sales"},
		rows: []table.Row{
			{"month": "July", "previous_sales": 3850000, "forecasted_sales": 4620000},
			{"month": "August", "previous_sales": 3920000, "forecasted_sales": 4700000},
			{"month": "September", "previous_sales": 3780000, "forecasted_sales": 4350000},
			{"month": "October", "previous_sales": 3650000, "forecasted_sales": 4100000},
			{"month": "November", "previous_sales": 4250000, "forecasted_sales": 4850000},
			{"month": "December", "previous_sales": 5120000, "forecasted_sales": 6240000},
		},
	},
	"customerSegments": {
		columns: []string{"segment_name", "customer_count", "percentage", "avg_ltv", "avg_cac", "churn_rate"},
		rows: []table.Row{
			{"segment_name": "Premium Subscribers", "customer_count": 12500, "percentage": 15.2, "avg_ltv": 4200, "avg_cac": 320, "churn_rate": 5.3},
			{"segment_name": "Frequent Shoppers", "customer_count": 23400, "percentage": 28.5, "avg_ltv": 2800, "avg_cac": 180, "churn_rate": 12.1},
			{"segment_name": "Digital Natives", "customer_count": 8700, "percentage": 10.6, "avg_ltv": 1650, "avg_cac": 85, "churn_rate": 18.4},
			{"segment_name": "Occasional Buyers", "customer_count": 34600, "percentage": 42.1, "avg_ltv": 950, "avg_cac": 130, "churn_rate": 25.7},
			{"segment_name": "Legacy Customers", "customer_count": 2900, "percentage": 3.5, "avg_ltv": 1850, "avg_cac": 210, "churn_rate": 8.9},
		},
	},
	"inventoryTurnover": {
		columns: []string{"category", "inventory_turnover", "avg_days_in_inventory", "current_inventory_value"},
		rows: []table.Row{
			{"category": "Electronics", "inventory_turnover": 12.4, "avg_days_in_inventory": 29, "current_inventory_value": 1850000},
			{"category": "Fashion Apparel", "inventory_turnover": 8.7, "avg_days_in_inventory": 42, "current_inventory_value": 2730000},
			{"category": "Seasonal Items", "inventory_turnover": 6.8, "avg_days_in_inventory": 54, "current_inventory_value": 1230000},
			{"category": "Kitchen & Dining", "inventory_turnover": 5.4, "avg_days_in_inventory": 68, "current_inventory_value": 980000},
			{"category": "Home Goods", "inventory_turnover": 4.2, "avg_days_in_inventory": 87, "current_inventory_value": 1640000},
			{"category": "Luxury Products", "inventory_turnover": 3.5, "avg_days_in_inventory": 104, "current_inventory_value": 1580000},
		},
	},
}

// Dataset returns a copy of the named dataset. Unknown names give an empty table and false.
func Dataset(name string) (table.Table, bool) {
	ds, ok := datasets[name]
	if !ok {
		return table.Table{Columns: []string{}, Rows: []table.Row{}}, false
	}

	rows := make([]table.Row, len(ds.rows))
	for i, r := range ds.rows {
		row := make(table.Row, len(r))
		for k, v := range r {
			row[k] = v
		}
		rows[i] = row
	}
	return table.Table{Columns: append([]string(nil), ds.columns...), Rows: rows}, true
}

// Names lists the available datasets in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

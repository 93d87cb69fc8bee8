// Package migrations содержит маппинг индекса ресторанов для Elasticsearch/OpenSearch.
package migrations

import _ "embed"

// ElasticsearchMapping - настройки и маппинг индекса ресторанов.
//
//go:embed elasticsearch_mapping.json
var ElasticsearchMapping string

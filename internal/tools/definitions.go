package tools

// RegisterAllTools registers the fixed catalog with the registry. The order
// here is the order tools/list advertises; no tool is registered dynamically
// after startup.
func RegisterAllTools(r *Registry) {
	r.MustRegister(ToolDefinition{
		Name:        "list_databases",
		Description: "List all databases in the MongoDB deployment",
		InputSchema: BuildSchema(map[string]any{}, nil),
	}, HandleListDatabases)

	r.MustRegister(ToolDefinition{
		Name:        "list_collections",
		Description: "List all collections in a database",
		InputSchema: BuildSchema(map[string]any{
			"database": DatabaseSchema(),
		}, []string{"database"}),
	}, HandleListCollections)

	r.MustRegister(ToolDefinition{
		Name:        "find_documents",
		Description: "Find documents in a collection matching a query, with skip and limit",
		InputSchema: BuildSchema(map[string]any{
			"database":   DatabaseSchema(),
			"collection": CollectionSchema(),
			"query":      ObjectSchema("MongoDB query filter (defaults to {})"),
			"limit":      IntegerSchema("Maximum number of documents to return", DefaultLimit),
			"skip":       IntegerSchema("Number of matching documents to skip", DefaultSkip),
		}, []string{"database", "collection"}),
	}, HandleFindDocuments)

	r.MustRegister(ToolDefinition{
		Name:        "count_documents",
		Description: "Count documents in a collection matching a filter",
		InputSchema: BuildSchema(map[string]any{
			"database":   DatabaseSchema(),
			"collection": CollectionSchema(),
			"filter":     ObjectSchema("MongoDB query filter (defaults to {})"),
		}, []string{"database", "collection"}),
	}, HandleCountDocuments)

	r.MustRegister(ToolDefinition{
		Name:        "insert_document",
		Description: "Insert a single document into a collection",
		InputSchema: BuildSchema(map[string]any{
			"database":   DatabaseSchema(),
			"collection": CollectionSchema(),
			"document":   ObjectSchema("Document to insert"),
		}, []string{"database", "collection", "document"}),
	}, HandleInsertDocument)

	r.MustRegister(ToolDefinition{
		Name:        "update_documents",
		Description: "Update one or many documents matching a filter",
		InputSchema: BuildSchema(map[string]any{
			"database":   DatabaseSchema(),
			"collection": CollectionSchema(),
			"filter":     ObjectSchema("MongoDB query filter selecting documents to update"),
			"update":     ObjectSchema("Update operations to apply (e.g. {\"$set\": {...}})"),
			"updateMany": BooleanSchema("Update all matching documents instead of the first", false),
		}, []string{"database", "collection", "filter", "update"}),
	}, HandleUpdateDocuments)

	r.MustRegister(ToolDefinition{
		Name:        "delete_documents",
		Description: "Delete one or many documents matching a filter",
		InputSchema: BuildSchema(map[string]any{
			"database":   DatabaseSchema(),
			"collection": CollectionSchema(),
			"filter":     ObjectSchema("MongoDB query filter selecting documents to delete"),
			"deleteMany": BooleanSchema("Delete all matching documents instead of the first", false),
		}, []string{"database", "collection", "filter"}),
	}, HandleDeleteDocuments)

	r.MustRegister(ToolDefinition{
		Name:        "drop_collection",
		Description: "Drop an entire collection. This is irreversible.",
		InputSchema: BuildSchema(map[string]any{
			"database":   DatabaseSchema(),
			"collection": CollectionSchema(),
		}, []string{"database", "collection"}),
	}, HandleDropCollection)
}

package constants

const (
	AppCatalogService  = "catalog-service"
	AppCatalogImporter = "catalog-importer"
	AppCatalogSeeder   = "catalog-seeder"
	AppMainStorefront  = "main storefront"
	AudienceAdmin      = "audience-admin"
)

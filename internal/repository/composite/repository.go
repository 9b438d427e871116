package composite

import (
	"github.com/opensearch-project/opensearch-go/v2"

	"github.com/shopstack/commerce-analytics-api/internal/config"
	"github.com/shopstack/commerce-analytics-api/internal/repository"
	osrepo "github.com/shopstack/commerce-analytics-api/internal/repository/opensearch"
	"github.com/shopstack/commerce-analytics-api/internal/repository/postgres"
)

// compositeRepository combines the Postgres system of record with the
// OpenSearch product index behind the single Repository interface.
type compositeRepository struct {
	repository.PostgresRepository
	search repository.SearchRepository
}

func NewCompositeRepository(
	dbConnections *config.DatabaseConnections,
	osClient *opensearch.Client,
	osConfig *config.OpenSearchConfig,
) repository.Repository {
	return &compositeRepository{
		PostgresRepository: postgres.NewPostgresRepository(dbConnections),
		search:             osrepo.NewRepository(osClient, osConfig),
	}
}

func (r *compositeRepository) Search() repository.SearchRepository {
	return r.search
}

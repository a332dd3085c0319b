package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/specforge/internal/domain/entities"
	domainRepos "github.com/rios0rios0/specforge/internal/domain/repositories"
	"github.com/rios0rios0/specforge/internal/infrastructure/repositories/gitcli"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Repository handles depend on settings resolved from flags at call
	// time, so the container provides a factory rather than an instance.
	return container.Provide(func() domainRepos.GitRepositoryFactory {
		return func(settings *entities.Settings) domainRepos.GitRepository {
			return gitcli.NewGitCLIRepository(settings)
		}
	})
}

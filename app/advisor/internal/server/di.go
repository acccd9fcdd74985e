package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/career_advisor/app/advisor/internal/data"
	"github.com/iWorld-y/career_advisor/app/advisor/internal/service"
	"github.com/iWorld-y/career_advisor/app/advisor/internal/usecase"
)

// ProviderSet 是推荐服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,

	// Data providers
	data.NewData,
	data.NewCollegeRepo,
	data.NewProfileRepo,
	data.NewSchemeRepo,
	data.NewGenerator,

	// UseCase providers
	usecase.NewCollegeUseCase,
	usecase.NewSuggestUseCase,
	usecase.NewSchemeUseCase,

	// Service providers
	service.NewAdvisorService,
)

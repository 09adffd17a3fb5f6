package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/estate_commission/internal/apperrors"
	"github.com/SscSPs/estate_commission/internal/core/domain"
	portssvc "github.com/SscSPs/estate_commission/internal/core/ports/services"
	"github.com/SscSPs/estate_commission/internal/core/services"
	"github.com/SscSPs/estate_commission/internal/dto"
	"github.com/SscSPs/estate_commission/internal/middleware"
)

type SettingsServiceTestSuite struct {
	suite.Suite
	mockSettingsRepo *MockSettingsRepository
	service          portssvc.CommissionSettingsSvcFacade
	companyID        string
	userID           string
	ctx              context.Context
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockSettingsRepo = new(MockSettingsRepository)
	suite.service = services.NewCommissionSettingsService(suite.mockSettingsRepo)
	suite.companyID = uuid.NewString()
	suite.userID = uuid.NewString()
	suite.ctx = middleware.WithUser(context.Background(), suite.userID, []string{suite.companyID})
}

func (suite *SettingsServiceTestSuite) configRequest() dto.CommissionConfigRequest {
	return dto.CommissionConfigRequest{
		CommissionPercent:       dec("5"),
		PREAPercentOfCommission: dec("3"),
		AgencyPercentRemaining:  dec("50"),
		VATRateOnCommission:     dec("0.155"),
	}
}

func (suite *SettingsServiceTestSuite) TestUpsertCompanySettings_Success() {
	suite.mockSettingsRepo.On("UpsertSettings", suite.ctx, mock.MatchedBy(func(s domain.CommissionSettings) bool {
		return s.CompanyID == suite.companyID && s.PropertyID == nil && s.LastUpdatedBy == suite.userID
	})).Return(nil).Once()

	settings, err := suite.service.UpsertCompanySettings(suite.ctx, suite.companyID, suite.configRequest(), suite.userID)

	suite.Require().NoError(err)
	suite.Equal("50", settings.Config.AgentPercentRemaining().String())
	suite.False(settings.CreatedAt.IsZero())
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpsertPropertySettings_ScopesToProperty() {
	suite.mockSettingsRepo.On("UpsertSettings", suite.ctx, mock.MatchedBy(func(s domain.CommissionSettings) bool {
		return s.PropertyID != nil && *s.PropertyID == "prop-9"
	})).Return(nil).Once()

	settings, err := suite.service.UpsertPropertySettings(suite.ctx, suite.companyID, "prop-9", suite.configRequest(), suite.userID)

	suite.Require().NoError(err)
	suite.Equal("prop-9", *settings.PropertyID)
}

func (suite *SettingsServiceTestSuite) TestUpsertCompanySettings_RejectsMismatchedAgentShare() {
	req := suite.configRequest()
	req.AgentPercentRemaining = decPtr("40")

	_, err := suite.service.UpsertCompanySettings(suite.ctx, suite.companyID, req, suite.userID)

	var cfgErr *domain.ConfigurationError
	suite.Require().True(errors.As(err, &cfgErr))
	suite.Equal("agentPercentRemaining", cfgErr.Field)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "UpsertSettings", mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestUpsertCompanySettings_Forbidden() {
	_, err := suite.service.UpsertCompanySettings(suite.ctx, uuid.NewString(), suite.configRequest(), suite.userID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "UpsertSettings", mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestGetCompanySettings_NotFound() {
	suite.mockSettingsRepo.On("FindCompanySettings", suite.ctx, suite.companyID).Return(nil, apperrors.ErrNotFound).Once()

	settings, err := suite.service.GetCompanySettings(suite.ctx, suite.companyID)

	suite.Nil(settings)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SettingsServiceTestSuite) TestResolveConfig() {
	company := &domain.CommissionSettings{CompanyID: suite.companyID, Config: defaultConfig()}
	override := defaultConfig().WithAgencyPercent(dec("70"))
	property := &domain.CommissionSettings{CompanyID: suite.companyID, PropertyID: strPtr("prop-1"), Config: override}
	ctx := context.Background()

	suite.Run("property override wins", func() {
		suite.mockSettingsRepo.On("FindPropertySettings", ctx, suite.companyID, "prop-1").Return(property, nil).Once()

		cfg, err := suite.service.ResolveConfig(ctx, suite.companyID, "prop-1")
		suite.Require().NoError(err)
		suite.Equal("70", cfg.AgencyPercentRemaining.String())
	})

	suite.Run("falls back to company default", func() {
		suite.mockSettingsRepo.On("FindPropertySettings", ctx, suite.companyID, "prop-2").Return(nil, apperrors.ErrNotFound).Once()
		suite.mockSettingsRepo.On("FindCompanySettings", ctx, suite.companyID).Return(company, nil).Once()

		cfg, err := suite.service.ResolveConfig(ctx, suite.companyID, "prop-2")
		suite.Require().NoError(err)
		suite.Equal("50", cfg.AgencyPercentRemaining.String())
	})

	suite.Run("no settings at all", func() {
		suite.mockSettingsRepo.On("FindPropertySettings", ctx, suite.companyID, "prop-3").Return(nil, apperrors.ErrNotFound).Once()
		suite.mockSettingsRepo.On("FindCompanySettings", ctx, suite.companyID).Return(nil, apperrors.ErrNotFound).Once()

		_, err := suite.service.ResolveConfig(ctx, suite.companyID, "prop-3")
		suite.ErrorIs(err, apperrors.ErrNotFound)
	})

	suite.Run("repository failure is not masked", func() {
		dbErr := errors.New("connection refused")
		suite.mockSettingsRepo.On("FindPropertySettings", ctx, suite.companyID, "prop-4").Return(nil, dbErr).Once()

		_, err := suite.service.ResolveConfig(ctx, suite.companyID, "prop-4")
		suite.ErrorIs(err, dbErr)
	})
}

func (suite *SettingsServiceTestSuite) TestSeedCompanyDefaults() {
	existing := domain.CommissionSettings{CompanyID: "company-a", Config: defaultConfig()}
	fresh := domain.CommissionSettings{CompanyID: "company-b", PropertyID: strPtr("ignored"), Config: defaultConfig()}
	suite.mockSettingsRepo.On("InsertCompanySettingsIfAbsent", mock.Anything, mock.MatchedBy(func(s domain.CommissionSettings) bool {
		return s.CompanyID == "company-a" && s.CreatedBy == "system" && !s.CreatedAt.IsZero()
	})).Return(false, nil).Once()
	suite.mockSettingsRepo.On("InsertCompanySettingsIfAbsent", mock.Anything, mock.MatchedBy(func(s domain.CommissionSettings) bool {
		return s.CompanyID == "company-b" && s.PropertyID == nil
	})).Return(true, nil).Once()

	inserted, err := suite.service.SeedCompanyDefaults(context.Background(), []domain.CommissionSettings{existing, fresh})

	suite.Require().NoError(err)
	suite.Equal(1, inserted)
	suite.mockSettingsRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestSeedCompanyDefaults_InvalidProfile() {
	bad := domain.CommissionSettings{CompanyID: "company-c", Config: defaultConfig()}
	bad.Config.CommissionPercent = dec("101")

	inserted, err := suite.service.SeedCompanyDefaults(context.Background(), []domain.CommissionSettings{bad})

	suite.Zero(inserted)
	var cfgErr *domain.ConfigurationError
	suite.True(errors.As(err, &cfgErr), fmt.Sprintf("unexpected error %v", err))
	suite.mockSettingsRepo.AssertNotCalled(suite.T(), "InsertCompanySettingsIfAbsent", mock.Anything, mock.Anything)
}

func TestSettingsService(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}

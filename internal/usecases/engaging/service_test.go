package engaging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	eventmocks "github.com/fundedrank/fundedrank-api/infrastructure/events/mocks"
	"github.com/fundedrank/fundedrank-api/infrastructure/repository/mocks"
	"github.com/fundedrank/fundedrank-api/internal/domain"
)

func TestRecordClick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	clickRepo := mocks.NewMockClickRepository(ctrl)
	favoriteRepo := mocks.NewMockFavoriteRepository(ctrl)
	producer := eventmocks.NewMockProducer(ctrl)

	companyRepo.EXPECT().
		GetFactsBySlug(gomock.Any(), "apex-funding").
		Return(&domain.CompanyFacts{ID: 7, Slug: "apex-funding"}, nil)
	clickRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.ClickEvent) error {
			assert.Equal(t, int64(7), event.CompanyID)
			assert.Equal(t, domain.ClickIntentPrimary, event.Intent)
			assert.Equal(t, domain.TabTop, event.Tab)
			assert.Equal(t, 2, event.Position)
			assert.NotEmpty(t, event.PublicID)
			assert.NotEmpty(t, event.IPHash)
			assert.NotContains(t, event.IPHash, "198.51.100.7", "raw IP must never be stored")
			return nil
		})
	producer.EXPECT().PublishClick(gomock.Any()).Return(nil)

	service := NewEngagementService(companyRepo, clickRepo, favoriteRepo, producer)

	href, err := service.RecordClick(context.Background(), "apex-funding", domain.ClickIntentPrimary, domain.TabTop, 2, "198.51.100.7")
	require.NoError(t, err)
	assert.Equal(t,
		"/firmy/apex-funding?utm_source=home-ranking&utm_medium=primary&utm_campaign=rankings-tabs&tab=top&position=2",
		href,
	)
}

func TestRecordClick_FloorsPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	clickRepo := mocks.NewMockClickRepository(ctrl)
	favoriteRepo := mocks.NewMockFavoriteRepository(ctrl)
	producer := eventmocks.NewMockProducer(ctrl)

	companyRepo.EXPECT().
		GetFactsBySlug(gomock.Any(), "apex-funding").
		Return(&domain.CompanyFacts{ID: 7, Slug: "apex-funding"}, nil)
	clickRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.ClickEvent) error {
			assert.Equal(t, 1, event.Position)
			return nil
		})
	producer.EXPECT().PublishClick(gomock.Any()).Return(nil)

	service := NewEngagementService(companyRepo, clickRepo, favoriteRepo, producer)

	_, err := service.RecordClick(context.Background(), "apex-funding", domain.ClickIntentLogo, domain.TabTop, 0, "")
	require.NoError(t, err)
}

func TestRecordClick_UnknownCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	clickRepo := mocks.NewMockClickRepository(ctrl)
	favoriteRepo := mocks.NewMockFavoriteRepository(ctrl)
	producer := eventmocks.NewMockProducer(ctrl)

	companyRepo.EXPECT().
		GetFactsBySlug(gomock.Any(), "ghost").
		Return(nil, nil)

	service := NewEngagementService(companyRepo, clickRepo, favoriteRepo, producer)

	_, err := service.RecordClick(context.Background(), "ghost", domain.ClickIntentPrimary, domain.TabTop, 1, "")
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestRecordClick_PublishFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyRepo := mocks.NewMockCompanyRepository(ctrl)
	clickRepo := mocks.NewMockClickRepository(ctrl)
	favoriteRepo := mocks.NewMockFavoriteRepository(ctrl)
	producer := eventmocks.NewMockProducer(ctrl)

	companyRepo.EXPECT().
		GetFactsBySlug(gomock.Any(), "apex-funding").
		Return(&domain.CompanyFacts{ID: 7, Slug: "apex-funding"}, nil)
	clickRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	producer.EXPECT().PublishClick(gomock.Any()).Return(errors.New("broker down"))

	service := NewEngagementService(companyRepo, clickRepo, favoriteRepo, producer)

	href, err := service.RecordClick(context.Background(), "apex-funding", domain.ClickIntentPrimary, domain.TabTop, 1, "")
	assert.NoError(t, err)
	assert.NotEmpty(t, href)
}

func TestFavorites(t *testing.T) {
	user := &domain.User{ID: 42}

	t.Run("add", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		companyRepo := mocks.NewMockCompanyRepository(ctrl)
		clickRepo := mocks.NewMockClickRepository(ctrl)
		favoriteRepo := mocks.NewMockFavoriteRepository(ctrl)
		producer := eventmocks.NewMockProducer(ctrl)

		companyRepo.EXPECT().
			GetFactsBySlug(gomock.Any(), "apex-funding").
			Return(&domain.CompanyFacts{ID: 7}, nil)
		favoriteRepo.EXPECT().Add(gomock.Any(), int64(42), int64(7)).Return(nil)

		service := NewEngagementService(companyRepo, clickRepo, favoriteRepo, producer)
		assert.NoError(t, service.AddFavorite(context.Background(), user, "apex-funding"))
	})

	t.Run("remove", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		companyRepo := mocks.NewMockCompanyRepository(ctrl)
		clickRepo := mocks.NewMockClickRepository(ctrl)
		favoriteRepo := mocks.NewMockFavoriteRepository(ctrl)
		producer := eventmocks.NewMockProducer(ctrl)

		companyRepo.EXPECT().
			GetFactsBySlug(gomock.Any(), "apex-funding").
			Return(&domain.CompanyFacts{ID: 7}, nil)
		favoriteRepo.EXPECT().Remove(gomock.Any(), int64(42), int64(7)).Return(nil)

		service := NewEngagementService(companyRepo, clickRepo, favoriteRepo, producer)
		assert.NoError(t, service.RemoveFavorite(context.Background(), user, "apex-funding"))
	})

	t.Run("unknown company", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		companyRepo := mocks.NewMockCompanyRepository(ctrl)
		clickRepo := mocks.NewMockClickRepository(ctrl)
		favoriteRepo := mocks.NewMockFavoriteRepository(ctrl)
		producer := eventmocks.NewMockProducer(ctrl)

		companyRepo.EXPECT().
			GetFactsBySlug(gomock.Any(), "ghost").
			Return(nil, nil)

		service := NewEngagementService(companyRepo, clickRepo, favoriteRepo, producer)
		assert.ErrorIs(t, service.AddFavorite(context.Background(), user, "ghost"), ErrCompanyNotFound)
	})
}

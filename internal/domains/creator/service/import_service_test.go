package service

import (
	"context"
	"strings"
	"testing"

	"creator-portal-backend/internal/domains/creator/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runImport(t *testing.T, svc *creatorService, csv string) *model.ImportSummary {
	t.Helper()
	summary, err := svc.Import(context.Background(), "creators.csv", "text/csv", int64(len(csv)), strings.NewReader(csv))
	require.NoError(t, err)
	return summary
}

func TestImportGate(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeLocations{})
	ctx := context.Background()

	t.Run("rejects non-csv file", func(t *testing.T) {
		_, err := svc.Import(ctx, "creators.xlsx", "application/vnd.ms-excel", 10, strings.NewReader("x"))
		assert.ErrorIs(t, err, model.ErrInvalidFileType)
	})

	t.Run("accepts csv content type with odd filename", func(t *testing.T) {
		_, err := svc.Import(ctx, "upload.bin", "text/csv", 10, strings.NewReader("name,socialLink\n"))
		assert.NotErrorIs(t, err, model.ErrInvalidFileType)
	})

	t.Run("rejects file over 5 MiB", func(t *testing.T) {
		_, err := svc.Import(ctx, "creators.csv", "text/csv", 5*1024*1024+1, strings.NewReader(""))
		assert.ErrorIs(t, err, model.ErrFileTooLarge)
	})

	t.Run("rejects empty file", func(t *testing.T) {
		_, err := svc.Import(ctx, "creators.csv", "text/csv", 0, strings.NewReader(""))
		assert.ErrorIs(t, err, model.ErrEmptyFile)
	})

	t.Run("rejects header-only file", func(t *testing.T) {
		_, err := svc.Import(ctx, "creators.csv", "text/csv", 20, strings.NewReader("name,socialLink\n"))
		assert.ErrorIs(t, err, model.ErrEmptyFile)
	})
}

func TestImportParseErrorAbortsAll(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeLocations{})

	// Quote không đóng ở row 2: toàn bộ import abort, row 1 hợp lệ
	// cũng không được persist sau điểm hỏng
	csv := "name,socialLink\n" +
		"Aarav,https://instagram.com/aarav\n" +
		"\"broken,https://x.com/broken\n"

	_, err := svc.Import(context.Background(), "creators.csv", "text/csv", int64(len(csv)), strings.NewReader(csv))
	require.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrEmptyFile)
	assert.Empty(t, repo.created)
}

func TestImportPartialFailureIsolation(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeLocations{})

	csv := "name,socialLink\n" +
		"Aarav,https://instagram.com/aarav\n" +
		",https://instagram.com/ghost\n" +
		"Meera,https://youtube.com/@meera\n"

	summary := runImport(t, svc, csv)

	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 1, summary.ErrorCount)
	assert.True(t, summary.Success)
	require.Len(t, summary.Data.Errors, 1)
	assert.Equal(t, "Row 2: Name is required", summary.Data.Errors[0])

	require.Len(t, repo.created, 2)
	assert.Equal(t, "Aarav", repo.created[0].Name)
	assert.Equal(t, "Meera", repo.created[1].Name)
}

func TestImportAppliesDefaults(t *testing.T) {
	repo := &fakeRepo{}
	locations := &fakeLocations{}
	svc := newTestService(repo, locations)

	csv := "name,socialLink,followers\n" +
		"Aarav,https://instagram.com/aarav,10000\n" +
		",https://instagram.com/ghost,\n"

	summary := runImport(t, svc, csv)

	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, []string{"Row 2: Name is required"}, summary.Data.Errors)

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.Equal(t, model.DefaultPlatform, created.Platform)
	assert.Equal(t, model.DefaultGenre, created.Genre)
	assert.Equal(t, model.DefaultLocation, created.LocationName)
	assert.Equal(t, model.DefaultAvatarURL, created.Avatar)
	assert.Equal(t, int64(10000), created.Details.Analytics.Followers)

	// Default location cũng đi qua registry
	assert.Equal(t, []string{model.DefaultLocation}, locations.ensured)
}

func TestImportPersistenceFailureRecordedPerRow(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeLocations{})

	// Platform enum enforce ở create path, không phải row validator:
	// row vẫn pass required-field check rồi fail lúc persist
	csv := "name,socialLink,platform\n" +
		"Aarav,https://instagram.com/aarav,MySpace\n" +
		"Meera,https://youtube.com/@meera,YouTube\n"

	summary := runImport(t, svc, csv)

	assert.Equal(t, 1, summary.Created)
	assert.Equal(t, 1, summary.ErrorCount)
	require.Len(t, summary.Data.Errors, 1)
	assert.True(t, strings.HasPrefix(summary.Data.Errors[0], "Row 1: "))
	assert.Contains(t, summary.Data.Errors[0], "platform")
}

func TestImportAliasHeaders(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeLocations{})

	csv := "Creator Name,social_link,city,Follower Count\n" +
		"Aarav,https://instagram.com/aarav,Mumbai,5000\n"

	summary := runImport(t, svc, csv)

	assert.Equal(t, 1, summary.Created)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Aarav", repo.created[0].Name)
	assert.Equal(t, "Mumbai", repo.created[0].LocationName)
	assert.Equal(t, int64(5000), repo.created[0].Details.Analytics.Followers)
}

func TestImportSequentialRowNumbers(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeLocations{})

	csv := "name,socialLink\n" +
		",\n" +
		"Meera,\n" +
		",https://x.com/three\n"

	summary := runImport(t, svc, csv)

	assert.Equal(t, 0, summary.Created)
	assert.Equal(t, []string{
		"Row 1: Name is required",
		"Row 2: Social link is required",
		"Row 3: Name is required",
	}, summary.Data.Errors)
}

func TestTemplateRoundTripsThroughImport(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakeLocations{})

	template := svc.Template()
	summary := runImport(t, svc, template)

	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 0, summary.ErrorCount)
	assert.Empty(t, summary.Data.Errors)
}

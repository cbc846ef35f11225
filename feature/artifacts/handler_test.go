package artifacts

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"state-reconciler/core/reconcile"
	storagemocks "state-reconciler/core/storage/mocks"
	"state-reconciler/feature/artifacts/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestHandlePlan(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	expectArtifactRows(sqlMock,
		models.Artifact{ObjectKey: "a.bin", Checksum: "aaaa"},
	)

	client := &storagemocks.Client{}
	client.On("ListObjects", mock.Anything, "artifacts", mock.Anything).Return(objectChannel(
		minio.ObjectInfo{Key: "a.bin", ETag: "aaaa"},
		minio.ObjectInfo{Key: "stale.bin", ETag: "eeee"},
	))

	feature := NewFeature(client, "artifacts", db, zap.NewNop())
	app := fiber.New()
	assert.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/artifacts/plan", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var report Report
	assert.NoError(t, json.Unmarshal(body, &report))
	assert.Equal(t, 1, report.Synced)
	assert.Equal(t, []string{"stale.bin"}, report.Orphans)
}

func TestHandleApply_Confirmed(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	expectArtifactRows(sqlMock)

	client := &storagemocks.Client{}
	client.On("ListObjects", mock.Anything, "artifacts", mock.Anything).Return(objectChannel(
		minio.ObjectInfo{Key: "stale.bin"},
	))
	client.On("RemoveObject", mock.Anything, "artifacts", "stale.bin", mock.Anything).
		Return(nil).Once()

	feature := NewFeature(client, "artifacts", db, zap.NewNop())
	app := fiber.New()
	assert.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("POST", "/artifacts/apply?confirm=true", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var payload struct {
		Report Report                `json:"report"`
		Result reconcile.ApplyResult `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, reconcile.StatusSuccess, payload.Result.Status)
	assert.Equal(t, 1, payload.Result.Executed)
	client.AssertExpectations(t)
}

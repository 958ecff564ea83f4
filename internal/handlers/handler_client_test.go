package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comerzia/comerzia_backend/internal/apperrors"
	"github.com/comerzia/comerzia_backend/internal/core/domain"
	"github.com/comerzia/comerzia_backend/internal/dto"
)

func TestListClients(t *testing.T) {
	clientSvc := &MockClientService{}
	clientSvc.On("ListClients", mock.Anything).Return([]domain.Client{
		{ClientID: "client-1", DocumentType: domain.ClientDocumentTypeRUC, DocumentNumber: "20123456789", BusinessName: "Acme SAC", IsActive: true},
		{ClientID: "client-2", DocumentType: domain.ClientDocumentTypeDNI, DocumentNumber: "44556677", FirstName: "Ana", LastName: "Lopez", IsActive: true},
	}, nil)

	container := emptyContainer()
	container.Client = clientSvc
	r := setupRouter(t, container)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.ClientResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Acme SAC", resp[0].DisplayName)
	assert.Equal(t, "Ana Lopez", resp[1].DisplayName)
}

func TestGetClient_NotFoundMapsTo404(t *testing.T) {
	clientSvc := &MockClientService{}
	clientSvc.On("GetClientByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound)

	container := emptyContainer()
	container.Client = clientSvc
	r := setupRouter(t, container)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

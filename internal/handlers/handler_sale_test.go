package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comerzia/comerzia_backend/internal/apperrors"
	"github.com/comerzia/comerzia_backend/internal/core/domain"
	portssvc "github.com/comerzia/comerzia_backend/internal/core/ports/services"
	"github.com/comerzia/comerzia_backend/internal/dto"
	"github.com/comerzia/comerzia_backend/internal/handlers"
	"github.com/comerzia/comerzia_backend/internal/platform/config"
)

// --- Mock SaleService ---
type MockSaleService struct {
	mock.Mock
}

func (m *MockSaleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, proofPaths map[string]string, actor string) (*domain.Sale, error) {
	args := m.Called(ctx, req, proofPaths, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) UpdateDraft(ctx context.Context, saleID string, req dto.CreateSaleRequest, actor string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleService) ListSales(ctx context.Context, filter dto.SaleFilter) ([]domain.Sale, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}
func (m *MockSaleService) GenerateQuotation(ctx context.Context, req dto.QuotationRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var _ portssvc.SaleSvcFacade = (*MockSaleService)(nil)

// --- Mock NoteService ---
type MockNoteService struct {
	mock.Mock
}

func (m *MockNoteService) CreateNote(ctx context.Context, req dto.CreateNoteRequest, actor string) (*domain.Note, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}
func (m *MockNoteService) GetNoteByID(ctx context.Context, noteID string) (*domain.Note, error) {
	args := m.Called(ctx, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}
func (m *MockNoteService) ListNotes(ctx context.Context) ([]domain.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Note), args.Error(1)
}
func (m *MockNoteService) ListNoteTypes(ctx context.Context) ([]domain.NoteType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NoteType), args.Error(1)
}

var _ portssvc.NoteSvcFacade = (*MockNoteService)(nil)

// --- Mock SeriesService ---
type MockSeriesService struct {
	mock.Mock
}

func (m *MockSeriesService) PreviewByDocumentType(ctx context.Context, documentTypeCode string) (domain.SeriesReservation, error) {
	args := m.Called(ctx, documentTypeCode)
	return args.Get(0).(domain.SeriesReservation), args.Error(1)
}
func (m *MockSeriesService) PreviewBySeriesID(ctx context.Context, seriesID string) (domain.SeriesReservation, error) {
	args := m.Called(ctx, seriesID)
	return args.Get(0).(domain.SeriesReservation), args.Error(1)
}
func (m *MockSeriesService) ResolveNoteSeries(ctx context.Context, category domain.NoteCategory, appliesToCode string) (domain.SeriesReservation, error) {
	args := m.Called(ctx, category, appliesToCode)
	return args.Get(0).(domain.SeriesReservation), args.Error(1)
}

var _ portssvc.SeriesSvcFacade = (*MockSeriesService)(nil)

// --- Mock CatalogService ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListProducts(ctx context.Context, filter string) []domain.CatalogEntry {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.CatalogEntry)
}
func (m *MockCatalogService) ListServices(ctx context.Context, filter string) []domain.CatalogEntry {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.CatalogEntry)
}

var _ portssvc.CatalogSvcFacade = (*MockCatalogService)(nil)

// --- Mock ClientService ---
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}
func (m *MockClientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

func setupRouter(t *testing.T, container *portssvc.ServiceContainer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{IsProduction: true, UploadsDir: t.TempDir()}
	handlers.RegisterRoutes(r, cfg, container)
	return r
}

func emptyContainer() *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Sale:    &MockSaleService{},
		Note:    &MockNoteService{},
		Series:  &MockSeriesService{},
		Catalog: &MockCatalogService{},
		Client:  &MockClientService{},
	}
}

func draftRequestJSON() []byte {
	body, _ := json.Marshal(dto.CreateSaleRequest{
		ClientID: "client-1",
		Items: []dto.SaleItemRequest{{
			ItemType:    domain.ItemTypeCustom,
			Description: "Widget",
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   decimal.NewFromInt(118),
		}},
		Draft: true,
	})
	return body
}

func TestCreateSale_JSONDraft(t *testing.T) {
	saleSvc := &MockSaleService{}
	saleSvc.On("CreateSale", mock.Anything, mock.MatchedBy(func(req dto.CreateSaleRequest) bool {
		return req.Draft && req.ClientID == "client-1"
	}), mock.Anything, "cashier-7").Return(&domain.Sale{SaleID: "sale-1", Status: domain.SaleStatusDraft}, nil)

	container := emptyContainer()
	container.Sale = saleSvc
	r := setupRouter(t, container)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(draftRequestJSON()))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor", "cashier-7")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.SaleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "sale-1", resp.SaleID)
	saleSvc.AssertExpectations(t)
}

func TestCreateSale_MultipartWithProof(t *testing.T) {
	saleSvc := &MockSaleService{}
	saleSvc.On("CreateSale", mock.Anything, mock.Anything, mock.MatchedBy(func(paths map[string]string) bool {
		_, ok := paths["proof_0_1700000000000"]
		return len(paths) == 1 && ok
	}), mock.Anything).Return(&domain.Sale{SaleID: "sale-2", Status: domain.SaleStatusIssued}, nil)

	container := emptyContainer()
	container.Sale = saleSvc
	r := setupRouter(t, container)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("data", string(draftRequestJSON())))
	fw, err := mw.CreateFormFile("proof_0_1700000000000", "voucher.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("binary"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sales", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	saleSvc.AssertExpectations(t)
}

func TestCreateSale_ValidationErrorMapsTo400(t *testing.T) {
	saleSvc := &MockSaleService{}
	saleSvc.On("CreateSale", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrValidation)

	container := emptyContainer()
	container.Sale = saleSvc
	r := setupRouter(t, container)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sales", bytes.NewReader(draftRequestJSON()))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetSale_NotFoundMapsTo404(t *testing.T) {
	saleSvc := &MockSaleService{}
	saleSvc.On("GetSaleByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound)

	container := emptyContainer()
	container.Sale = saleSvc
	r := setupRouter(t, container)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sales/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNextSequence_RequiresSelector(t *testing.T) {
	r := setupRouter(t, emptyContainer())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/document-series/next-sequence", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNextSequence_ByDocumentType(t *testing.T) {
	seriesSvc := &MockSeriesService{}
	seriesSvc.On("PreviewByDocumentType", mock.Anything, "03").
		Return(domain.SeriesReservation{SeriesID: "series-b", Series: "B001", Sequence: 7}, nil)

	container := emptyContainer()
	container.Series = seriesSvc
	r := setupRouter(t, container)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/document-series/next-sequence?documentTypeCode=03", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.SeriesReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "B001-00000007", resp.Number)
}

func TestGenerateQuotation_ReturnsPDF(t *testing.T) {
	saleSvc := &MockSaleService{}
	saleSvc.On("GenerateQuotation", mock.Anything, mock.Anything).Return([]byte("%PDF-1.4"), nil)

	container := emptyContainer()
	container.Sale = saleSvc
	r := setupRouter(t, container)

	body, _ := json.Marshal(dto.QuotationRequest{
		ClientID: "client-1",
		Items: []dto.SaleItemRequest{{
			ItemType:    domain.ItemTypeCustom,
			Description: "Widget",
			Quantity:    decimal.NewFromInt(1),
			UnitPrice:   decimal.NewFromInt(118),
		}},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sales/quotation", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, []byte("%PDF-1.4"), w.Body.Bytes())
}

func TestListProducts(t *testing.T) {
	catalogSvc := &MockCatalogService{}
	catalogSvc.On("ListProducts", mock.Anything, "wid").Return([]domain.CatalogEntry{
		{EntryID: "p1", Kind: domain.ItemTypeProduct, Code: "WID-01", Name: "Widget", ListPrice: decimal.NewFromInt(10), IsActive: true},
	})

	container := emptyContainer()
	container.Catalog = catalogSvc
	r := setupRouter(t, container)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?filter=wid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []dto.CatalogEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Widget", resp[0].Name)
}

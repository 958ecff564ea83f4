package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/comerzia/comerzia_backend/internal/core/domain"
	portsrepo "github.com/comerzia/comerzia_backend/internal/core/ports/repositories"
	portssvc "github.com/comerzia/comerzia_backend/internal/core/ports/services"
	"github.com/comerzia/comerzia_backend/internal/dto"
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

// --- Mock Notifier ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Report(kind portssvc.NotificationKind, title, message string) {
	m.Called(kind, title, message)
}

var _ portssvc.Notifier = (*MockNotifier)(nil)

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) SaveDraft(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}
func (m *MockSaleRepository) UpdateDraft(ctx context.Context, sale domain.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}
func (m *MockSaleRepository) SaveIssued(ctx context.Context, sale domain.Sale, seriesID string) (*domain.IssuedDocument, error) {
	args := m.Called(ctx, sale, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IssuedDocument), args.Error(1)
}
func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}
func (m *MockSaleRepository) ListSales(ctx context.Context, filter dto.SaleFilter) ([]domain.Sale, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

var _ portsrepo.SaleRepository = (*MockSaleRepository)(nil)

// --- Mock NoteRepository ---
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) SaveNote(ctx context.Context, note domain.Note, seriesID string) (*domain.IssuedDocument, error) {
	args := m.Called(ctx, note, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IssuedDocument), args.Error(1)
}
func (m *MockNoteRepository) FindNoteByID(ctx context.Context, noteID string) (*domain.Note, error) {
	args := m.Called(ctx, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}
func (m *MockNoteRepository) ListNotes(ctx context.Context) ([]domain.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Note), args.Error(1)
}
func (m *MockNoteRepository) ListNoteTypes(ctx context.Context) ([]domain.NoteType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NoteType), args.Error(1)
}
func (m *MockNoteRepository) FindNoteType(ctx context.Context, code string) (*domain.NoteType, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NoteType), args.Error(1)
}

var _ portsrepo.NoteRepository = (*MockNoteRepository)(nil)

// --- Mock SeriesRepository ---
type MockSeriesRepository struct {
	mock.Mock
}

func (m *MockSeriesRepository) FindSeriesByID(ctx context.Context, seriesID string) (*domain.DocumentSeries, error) {
	args := m.Called(ctx, seriesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentSeries), args.Error(1)
}
func (m *MockSeriesRepository) FindSaleSeries(ctx context.Context, documentTypeCode string) (*domain.DocumentSeries, error) {
	args := m.Called(ctx, documentTypeCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentSeries), args.Error(1)
}
func (m *MockSeriesRepository) FindNoteSeries(ctx context.Context, category domain.NoteCategory, appliesToCode string) (*domain.DocumentSeries, error) {
	args := m.Called(ctx, category, appliesToCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DocumentSeries), args.Error(1)
}

var _ portsrepo.SeriesRepository = (*MockSeriesRepository)(nil)

// --- Mock CatalogRepository ---
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListProducts(ctx context.Context) ([]domain.CatalogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogEntry), args.Error(1)
}
func (m *MockCatalogRepository) ListServices(ctx context.Context) ([]domain.CatalogEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogEntry), args.Error(1)
}

var _ portsrepo.CatalogRepository = (*MockCatalogRepository)(nil)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepository) ListClients(ctx context.Context, activeOnly bool) ([]domain.Client, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

var _ portsrepo.ClientRepository = (*MockClientRepository)(nil)

// --- Mock QuotationRenderer ---
type MockQuotationRenderer struct {
	mock.Mock
}

func (m *MockQuotationRenderer) RenderQuotation(q domain.Quotation) ([]byte, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var _ portssvc.QuotationRenderer = (*MockQuotationRenderer)(nil)

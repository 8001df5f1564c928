package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mwirigi/salepoint-api/internal/config"
	"github.com/mwirigi/salepoint-api/internal/domain/enum"
	"github.com/mwirigi/salepoint-api/internal/domain/gateway"
	"github.com/mwirigi/salepoint-api/pkg/apperror"
)

func testClient(srv *httptest.Server) *Client {
	return NewClient(&config.UpstreamConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	})
}

func TestDo_ForwardsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":{}}`))
	}))
	defer srv.Close()

	client := testClient(srv)
	ctx := ContextWithToken(context.Background(), "abc123")
	var out map[string]any
	if err := client.do(ctx, http.MethodGet, "/products", nil, nil, &out); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "Bearer abc123" {
		t.Errorf("expected bearer token forwarded, got %q", gotAuth)
	}
}

func TestDo_UnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"message":"ok","data":{"name":"Soda"}}`))
	}))
	defer srv.Close()

	var out struct {
		Name string `json:"name"`
	}
	if err := testClient(srv).do(context.Background(), http.MethodGet, "/x", nil, nil, &out); err != nil {
		t.Fatal(err)
	}
	if out.Name != "Soda" {
		t.Errorf("expected envelope data decoded, got %+v", out)
	}
}

func TestDo_AcceptsBarePayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"Soda"}`))
	}))
	defer srv.Close()

	var out struct {
		Name string `json:"name"`
	}
	if err := testClient(srv).do(context.Background(), http.MethodGet, "/x", nil, nil, &out); err != nil {
		t.Fatal(err)
	}
	if out.Name != "Soda" {
		t.Errorf("expected bare payload decoded, got %+v", out)
	}
}

func TestDo_RelaysBackendErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"success":false,"message":"Insufficient stock for product Soda"}`))
	}))
	defer srv.Close()

	err := testClient(srv).do(context.Background(), http.MethodPost, "/sales", nil, map[string]any{}, nil)
	if err == nil {
		t.Fatal("expected an error")
	}

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", appErr.Code)
	}
	if appErr.Message != "Insufficient stock for product Soda" {
		t.Errorf("expected backend message relayed verbatim, got %q", appErr.Message)
	}
	if !appErr.Remote {
		t.Error("backend rejections must be marked remote")
	}
}

func TestDo_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	err := testClient(srv).do(context.Background(), http.MethodGet, "/products", nil, nil, nil)
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr != apperror.ErrUpstreamUnavailable {
		t.Errorf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestCreateDocument_SaleFieldNames(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"success":true,"data":{"id":"` + uuid.New().String() + `","invoice_number":"INV-42"}}`))
	}))
	defer srv.Close()

	customerID := uuid.New()
	docs := NewDocumentClient(testClient(srv))
	doc, err := docs.CreateDocument(context.Background(), &gateway.DocumentInput{
		Type:          enum.DocumentTypeSale,
		PartyID:       &customerID,
		Date:          time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
		Status:        enum.DocumentStatusCompleted,
		PaymentStatus: enum.PaymentStatusPaid,
		GrandTotal:    116.00,
		PaidAmount:    116.00,
		PaymentMethod: "cash",
		Items: []gateway.DocumentItemInput{
			{ProductID: uuid.New(), Quantity: 1, UnitAmount: 100.00, Tax: 16.00},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if doc.InvoiceNumber != "INV-42" {
		t.Errorf("expected invoice number back, got %q", doc.InvoiceNumber)
	}

	if gotPath != "/sales" {
		t.Errorf("expected POST /sales, got %s", gotPath)
	}
	if _, ok := gotBody["customer_id"]; !ok {
		t.Error("sale payload must use customer_id")
	}
	if _, ok := gotBody["supplier_id"]; ok {
		t.Error("sale payload must not carry supplier_id")
	}
	if gotBody["date"] != "2026-08-29" {
		t.Errorf("expected date 2026-08-29, got %v", gotBody["date"])
	}
	if gotBody["status"] != "completed" || gotBody["payment_status"] != "paid" {
		t.Errorf("unexpected status fields: %v / %v", gotBody["status"], gotBody["payment_status"])
	}

	items := gotBody["items"].([]any)
	item := items[0].(map[string]any)
	if _, ok := item["unit_price"]; !ok {
		t.Error("sale items must use unit_price")
	}
	if item["tax"] != 16.00 {
		t.Errorf("expected per-item tax 16, got %v", item["tax"])
	}
}

func TestCreateDocument_PurchaseFieldNames(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"success":true,"data":{"id":"` + uuid.New().String() + `"}}`))
	}))
	defer srv.Close()

	supplierID := uuid.New()
	docs := NewDocumentClient(testClient(srv))
	_, err := docs.CreateDocument(context.Background(), &gateway.DocumentInput{
		Type:    enum.DocumentTypePurchase,
		PartyID: &supplierID,
		Date:    time.Now(),
		Items: []gateway.DocumentItemInput{
			{ProductID: uuid.New(), Quantity: 10, UnitAmount: 400.00},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if gotPath != "/purchases" {
		t.Errorf("expected POST /purchases, got %s", gotPath)
	}
	if _, ok := gotBody["supplier_id"]; !ok {
		t.Error("purchase payload must use supplier_id")
	}
	item := gotBody["items"].([]any)[0].(map[string]any)
	if _, ok := item["unit_cost"]; !ok {
		t.Error("purchase items must use unit_cost")
	}
}

func TestUpdateDocumentStatus_PathPerType(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	id := uuid.New()
	docs := NewDocumentClient(testClient(srv))
	if err := docs.UpdateDocumentStatus(context.Background(), enum.DocumentTypePurchaseReturn, id, enum.DocumentStatusCompleted); err != nil {
		t.Fatal(err)
	}
	want := "/purchase-returns/" + id.String() + "/status"
	if gotPath != want || gotMethod != http.MethodPut {
		t.Errorf("expected PUT %s, got %s %s", want, gotMethod, gotPath)
	}
}

func TestListProducts_WrappedAndBareShapes(t *testing.T) {
	wrapped := `{"success":true,"data":{"items":[{"id":"` + uuid.New().String() + `","name":"Soda","selling_price":1.5}],"pagination":{"current_page":1,"per_page":15,"total":40}}}`
	bare := `[{"id":"` + uuid.New().String() + `","name":"Soda","selling_price":1.5}]`

	for name, payload := range map[string]string{"wrapped": wrapped, "bare": bare} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(payload))
			}))
			defer srv.Close()

			catalog := NewCatalogClient(testClient(srv))
			items, total, err := catalog.ListProducts(context.Background(), nil)
			if err != nil {
				t.Fatal(err)
			}
			if len(items) != 1 || items[0].Name != "Soda" {
				t.Errorf("unexpected items: %+v", items)
			}
			if items[0].SellingPrice != 150 {
				t.Errorf("expected 150 cents, got %d", items[0].SellingPrice)
			}
			if name == "wrapped" && total != 40 {
				t.Errorf("expected total 40 from pagination, got %d", total)
			}
			if name == "bare" && total != 1 {
				t.Errorf("expected total 1 from item count, got %d", total)
			}
		})
	}
}

func TestListContacts_QueryIncludesType(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"success":true,"data":{"items":[]}}`))
	}))
	defer srv.Close()

	catalog := NewCatalogClient(testClient(srv))
	if _, _, err := catalog.ListContacts(context.Background(), "supplier", nil); err != nil {
		t.Fatal(err)
	}
	if gotQuery != "type=supplier" {
		t.Errorf("expected type=supplier query, got %q", gotQuery)
	}
}

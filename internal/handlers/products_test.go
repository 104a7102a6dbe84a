package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"shopcatalog/internal/catalog"
	"shopcatalog/internal/models"
	"shopcatalog/internal/pagination"
)

// fakeProductService records the arguments of the last call and returns err.
type fakeProductService struct {
	err      error
	parentID int64
	subID    int64
	theme    models.Theme
	req      pagination.Request
	input    catalog.ProductInput
	called   string
}

func (f *fakeProductService) page(req pagination.Request) (pagination.Response[models.ProductSummary], error) {
	f.req = req
	if f.err != nil {
		return pagination.Response[models.ProductSummary]{}, f.err
	}
	items := []models.ProductSummary{{ID: 1, Name: "Green Tea", Price: 1200}}
	return pagination.NewResponse(items, 25, req), nil
}

func (f *fakeProductService) List(_ context.Context, req pagination.Request) (pagination.Response[models.ProductSummary], error) {
	f.called = "List"
	return f.page(req)
}

func (f *fakeProductService) ListByCategory(_ context.Context, parentID int64, req pagination.Request) (pagination.Response[models.ProductSummary], error) {
	f.called, f.parentID = "ListByCategory", parentID
	return f.page(req)
}

func (f *fakeProductService) ListBySubCategory(_ context.Context, subID int64, req pagination.Request) (pagination.Response[models.ProductSummary], error) {
	f.called, f.subID = "ListBySubCategory", subID
	return f.page(req)
}

func (f *fakeProductService) ListByTheme(_ context.Context, theme models.Theme, req pagination.Request) (pagination.Response[models.ProductSummary], error) {
	f.called, f.theme = "ListByTheme", theme
	return f.page(req)
}

func (f *fakeProductService) Get(_ context.Context, id int64) (*models.Product, error) {
	f.called = "Get"
	if f.err != nil {
		return nil, f.err
	}
	return &models.Product{ID: id, Name: "Green Tea", Images: []models.ProductImage{{Ord: 0, FileName: "tea.jpg"}}}, nil
}

func (f *fakeProductService) Create(_ context.Context, in catalog.ProductInput) (int64, error) {
	f.called, f.input = "Create", in
	if f.err != nil {
		return 0, f.err
	}
	return 31, nil
}

func (f *fakeProductService) Update(_ context.Context, id int64, in catalog.ProductInput) (int64, error) {
	f.called, f.input = "Update", in
	if f.err != nil {
		return 0, f.err
	}
	return id, nil
}

func (f *fakeProductService) Delete(_ context.Context, id int64) (int64, error) {
	f.called = "Delete"
	if f.err != nil {
		return 0, f.err
	}
	return id, nil
}

func TestProductsList(t *testing.T) {
	svc := &fakeProductService{}
	h := NewProducts(svc)

	rr := do(h.List, http.MethodGet, "/api/product/list?page=1&size=10&type=t&keyword=tea", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if svc.req.Keyword != "tea" || svc.req.Type != pagination.SearchTitle {
		t.Errorf("request not forwarded: %+v", svc.req)
	}

	var body struct {
		Items       []models.ProductSummary `json:"items"`
		TotalCount  int                     `json:"totalCount"`
		Prev        bool                    `json:"prev"`
		Next        bool                    `json:"next"`
		Last        int                     `json:"last"`
		PageNumList []int                   `json:"pageNumList"`
	}
	decodeBody(t, rr, &body)
	if body.TotalCount != 25 || body.Last != 3 || body.Prev || !body.Next {
		t.Errorf("pager: got %+v", body)
	}
	if len(body.PageNumList) != 3 || len(body.Items) != 1 {
		t.Errorf("page: got %+v", body)
	}
}

func TestProductsListBadPagingIsClamped(t *testing.T) {
	svc := &fakeProductService{}
	h := NewProducts(svc)

	rr := do(h.List, http.MethodGet, "/api/product/list?page=-3&size=7", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if svc.req.Page != 1 || svc.req.Size != 10 {
		t.Errorf("got page %d size %d, want 1 / 10", svc.req.Page, svc.req.Size)
	}
}

func TestProductsListByCategory(t *testing.T) {
	tests := []struct {
		target     string
		wantStatus int
		wantParent int64
	}{
		{"/api/product/list/category?cno=3", http.StatusOK, 3},
		{"/api/product/list/category?cno=all", http.StatusOK, catalog.AllCategories},
		{"/api/product/list/category?cno=0", http.StatusOK, catalog.AllCategories},
		{"/api/product/list/category?cno=food", http.StatusBadRequest, -1},
		{"/api/product/list/category", http.StatusBadRequest, -1},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			svc := &fakeProductService{parentID: -1}
			rr := do(NewProducts(svc).ListByCategory, http.MethodGet, tt.target, "")
			if rr.Code != tt.wantStatus {
				t.Fatalf("status: got %d, want %d", rr.Code, tt.wantStatus)
			}
			if svc.parentID != tt.wantParent {
				t.Errorf("parent: got %d, want %d", svc.parentID, tt.wantParent)
			}
		})
	}
}

func TestProductsListBySubCategoryAndTheme(t *testing.T) {
	svc := &fakeProductService{}
	h := NewProducts(svc)

	if rr := do(h.ListBySubCategory, http.MethodGet, "/api/product/list/subcategory?scno=12", ""); rr.Code != http.StatusOK {
		t.Fatalf("subcategory status: got %d", rr.Code)
	}
	if svc.subID != 12 {
		t.Errorf("sub: got %d, want 12", svc.subID)
	}
	if rr := do(h.ListBySubCategory, http.MethodGet, "/api/product/list/subcategory?scno=x", ""); rr.Code != http.StatusBadRequest {
		t.Errorf("bad scno status: got %d, want 400", rr.Code)
	}

	if rr := do(h.ListByTheme, http.MethodGet, "/api/product/list/theme?themeCategory=focus", ""); rr.Code != http.StatusOK {
		t.Fatalf("theme status: got %d", rr.Code)
	}
	if svc.theme != models.ThemeFocus {
		t.Errorf("theme: got %q, want FOCUS", svc.theme)
	}
	if rr := do(h.ListByTheme, http.MethodGet, "/api/product/list/theme?themeCategory=loud", ""); rr.Code != http.StatusBadRequest {
		t.Errorf("bad theme status: got %d, want 400", rr.Code)
	}
}

func TestProductsErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("%w: 9", catalog.ErrNotFound), http.StatusNotFound},
		{"missing reference", fmt.Errorf("%w: sub-category 4", catalog.ErrReferenceNotFound), http.StatusNotFound},
		{"hierarchy mismatch", catalog.ErrHierarchyMismatch, http.StatusUnprocessableEntity},
		{"invalid input", fmt.Errorf("%w: name is required", catalog.ErrInvalidInput), http.StatusBadRequest},
		{"store failure", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewProducts(&fakeProductService{err: tt.err})
			rr := do(h.Add, http.MethodPost, "/api/product/add",
				`{"pname":"Mug","price":100,"categoryCno":1,"subCategoryScno":2}`)
			if rr.Code != tt.want {
				t.Fatalf("status: got %d, want %d", rr.Code, tt.want)
			}
			msg := errorBody(t, rr)
			if tt.want == http.StatusInternalServerError && msg != "internal server error" {
				t.Errorf("500 must not leak details, got %q", msg)
			}
		})
	}
}

func TestProductsAdd(t *testing.T) {
	svc := &fakeProductService{}
	h := NewProducts(svc)

	rr := do(h.Add, http.MethodPost, "/api/product/add",
		`{"pname":"Mug","price":1500,"pdesc":"stoneware","categoryCno":1,"subCategoryScno":2,"uploadFileNames":["mug.jpg"]}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200; body %s", rr.Code, rr.Body.String())
	}
	var body idResponse
	decodeBody(t, rr, &body)
	if body.ID != 31 {
		t.Errorf("id: got %d, want 31", body.ID)
	}
	if svc.input.Name != "Mug" || svc.input.SubID != 2 || len(svc.input.Images) != 1 {
		t.Errorf("input: got %+v", svc.input)
	}

	rr = do(h.Add, http.MethodPost, "/api/product/add", `{"pname":`)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("malformed body status: got %d, want 400", rr.Code)
	}
	if svc.called != "Create" {
		t.Errorf("unexpected call %q", svc.called)
	}
}

func TestProductsReadUpdateDelete(t *testing.T) {
	svc := &fakeProductService{}
	h := NewProducts(svc)

	rr := do(h.Read, http.MethodGet, "/api/product/read/5", "", "pno", "5")
	if rr.Code != http.StatusOK {
		t.Fatalf("read status: got %d", rr.Code)
	}
	var p models.Product
	decodeBody(t, rr, &p)
	if p.ID != 5 || len(p.Images) != 1 {
		t.Errorf("read body: got %+v", p)
	}

	rr = do(h.Read, http.MethodGet, "/api/product/read/x", "", "pno", "x")
	if rr.Code != http.StatusBadRequest {
		t.Errorf("bad pno status: got %d, want 400", rr.Code)
	}

	rr = do(h.Update, http.MethodPut, "/api/product/update/5", `{"pname":"Mug","categoryCno":1,"subCategoryScno":2}`, "pno", "5")
	if rr.Code != http.StatusOK {
		t.Fatalf("update status: got %d", rr.Code)
	}
	var body idResponse
	decodeBody(t, rr, &body)
	if body.ID != 5 || svc.called != "Update" {
		t.Errorf("update: got id %d, call %q", body.ID, svc.called)
	}

	rr = do(h.Delete, http.MethodDelete, "/api/product/delete/5", "", "pno", "5")
	if rr.Code != http.StatusOK || svc.called != "Delete" {
		t.Errorf("delete: got %d, call %q", rr.Code, svc.called)
	}

	svc.err = fmt.Errorf("%w: 5", catalog.ErrNotFound)
	rr = do(h.Read, http.MethodGet, "/api/product/read/5", "", "pno", "5")
	if rr.Code != http.StatusNotFound {
		t.Errorf("read deleted: got %d, want 404", rr.Code)
	}
}

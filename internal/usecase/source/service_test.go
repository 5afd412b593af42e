package source_test

import (
	"context"
	"errors"
	"testing"

	"monfluxrss/internal/domain/entity"
	"monfluxrss/internal/repository"
	srcUC "monfluxrss/internal/usecase/source"
)

/*────────────────────  in-memory stub  ────────────────────*/

// very-light SourceRepository stub
type stubRepo struct {
	data   map[int64]*entity.Source
	nextID int64
	err    error // forced error injection
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Source{}, nextID: 1}
}

/* --- satisfies repository.SourceRepository --- */

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Source, error) {
	return s.data[id], s.err
}
func (s *stubRepo) List(_ context.Context) ([]*entity.Source, error) {
	var out []*entity.Source
	for _, v := range s.data {
		out = append(out, v)
	}
	return out, s.err
}
func (s *stubRepo) Create(_ context.Context, src *entity.Source) error {
	if s.err != nil {
		return s.err
	}
	for _, v := range s.data {
		if v.URL == src.URL {
			return repository.ErrDuplicateURL
		}
	}
	src.ID = s.nextID
	s.nextID++
	s.data[src.ID] = src
	return nil
}
func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[id]; !ok {
		return entity.ErrNotFound
	}
	delete(s.data, id)
	return nil
}

/*────────────────────  test cases  ────────────────────*/

/* 1. Create: required field validation */
func TestService_Create_validation(t *testing.T) {
	svc := srcUC.Service{Repo: newStub()}

	tests := []struct {
		name string
		in   srcUC.CreateInput
	}{
		{
			name: "empty input",
			in:   srcUC.CreateInput{},
		},
		{
			name: "missing name",
			in:   srcUC.CreateInput{URL: "https://linuxfr.org/news.atom", Category: entity.CategoryTechWatch},
		},
		{
			name: "invalid url",
			in:   srcUC.CreateInput{Name: "LinuxFr", URL: "not-a-url", Category: entity.CategoryTechWatch},
		},
		{
			name: "unknown category",
			in:   srcUC.CreateInput{Name: "LinuxFr", URL: "https://linuxfr.org/news.atom", Category: "sports"},
		},
		{
			name: "unknown extractor",
			in: srcUC.CreateInput{
				Name: "LinuxFr", URL: "https://linuxfr.org/news.atom",
				Category: entity.CategoryTechWatch, Extractor: "html-scrape",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tt.in); err == nil {
				t.Fatalf("want validation error, got nil")
			}
		})
	}
}

/* 2. Create: the source is stored with its generated ID */
func TestService_Create_success(t *testing.T) {
	stub := newStub()
	svc := srcUC.Service{Repo: stub}

	in := srcUC.CreateInput{
		Name:     "Marmiton",
		URL:      "https://www.marmiton.org/rss/recettes.xml",
		Category: entity.CategoryCooking,
	}
	src, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if src.ID == 0 {
		t.Fatalf("expected generated ID, got 0")
	}
	if got := stub.data[src.ID]; got == nil || got.Name != "Marmiton" {
		t.Fatalf("source was not stored: %+v", got)
	}
	// empty extractor defaults to the generic RSS strategy
	if src.Extractor != entity.ExtractorRSS {
		t.Fatalf("Extractor = %q, want %q", src.Extractor, entity.ExtractorRSS)
	}
}

/* 3. Create: duplicate feed URL */
func TestService_Create_duplicateURL(t *testing.T) {
	stub := newStub()
	svc := srcUC.Service{Repo: stub}

	in := srcUC.CreateInput{
		Name:     "LinuxFr",
		URL:      "https://linuxfr.org/news.atom",
		Category: entity.CategoryTechWatch,
	}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first Create err=%v", err)
	}

	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, srcUC.ErrDuplicateSource) {
		t.Fatalf("want ErrDuplicateSource, got %v", err)
	}
}

/* 4. List */
func TestService_List(t *testing.T) {
	stub := newStub()
	stub.data[1] = &entity.Source{ID: 1, Name: "LinuxFr"}
	stub.data[2] = &entity.Source{ID: 2, Name: "Gamekult"}
	svc := srcUC.Service{Repo: stub}

	out, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
}

func TestService_List_repoError(t *testing.T) {
	stub := newStub()
	stub.err = errors.New("boom")
	svc := srcUC.Service{Repo: stub}

	if _, err := svc.List(context.Background()); err == nil {
		t.Fatalf("want error, got nil")
	}
}

/* 5. Get */
func TestService_Get(t *testing.T) {
	stub := newStub()
	stub.data[7] = &entity.Source{ID: 7, Name: "Futura Sciences"}
	svc := srcUC.Service{Repo: stub}

	src, err := svc.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if src.Name != "Futura Sciences" {
		t.Fatalf("Name = %q", src.Name)
	}

	if _, err := svc.Get(context.Background(), 99); !errors.Is(err, srcUC.ErrSourceNotFound) {
		t.Fatalf("want ErrSourceNotFound, got %v", err)
	}

	var vErr *entity.ValidationError
	if _, err := svc.Get(context.Background(), 0); !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError for id=0, got %v", err)
	}
}

/* 6. Delete */
func TestService_Delete(t *testing.T) {
	stub := newStub()
	stub.data[3] = &entity.Source{ID: 3, Name: "CuisineAZ"}
	svc := srcUC.Service{Repo: stub}

	if err := svc.Delete(context.Background(), 3); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if _, ok := stub.data[3]; ok {
		t.Fatalf("source 3 still present after Delete")
	}
}

func TestService_Delete_notFound(t *testing.T) {
	svc := srcUC.Service{Repo: newStub()}

	if err := svc.Delete(context.Background(), 42); !errors.Is(err, srcUC.ErrSourceNotFound) {
		t.Fatalf("want ErrSourceNotFound, got %v", err)
	}
}

func TestService_Delete_invalidID(t *testing.T) {
	svc := srcUC.Service{Repo: newStub()}

	var vErr *entity.ValidationError
	if err := svc.Delete(context.Background(), -1); !errors.As(err, &vErr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
}

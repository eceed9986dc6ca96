package portfolio

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDoc = `{
  "chef": {
    "name": "Ana Souza",
    "tagline": "Coastal cooking",
    "bio": "Fifteen years behind the pass.",
    "profileImage": "images/ana.jpg",
    "contact": {"phone": "+1 555 0100", "email": "ana@example.com", "whatsapp": "+1 (555) 010-0101"}
  },
  "cuisines": [
    {"id": "japanese", "name": "Japanese", "order": 2, "dishes": [
      {"name": "Chirashi", "image": "images/chirashi.jpg", "shortDescription": "Rice bowl",
       "fullDescription": "Seasoned rice with sashimi.", "tags": ["Raw", "Seafood", "raw", "Rice"]}
    ]},
    {"id": 7, "name": "Brazilian", "order": 1, "dishes": [
      {"name": "Moqueca", "image": "https://cdn.example.com/moqueca.jpg", "shortDescription": "Fish stew",
       "fullDescription": "Fish stew with coconut milk.", "tags": ["Entrée", "entree", "Spicy"]},
      {"name": "Pão de queijo", "image": "/abs/pao.jpg", "tags": []}
    ]},
    {"id": "french", "name": "French", "order": 2, "dishes": []}
  ]
}`

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeDoc(t, sampleDoc)
	var l Loader
	p, err := l.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Source != path {
		t.Errorf("got source %q, want %q", p.Source, path)
	}
	if got := p.WindowTitle(); got != "Ana Souza - Portfolio" {
		t.Errorf("got window title %q", got)
	}

	var ids []string
	for _, c := range p.Cuisines {
		ids = append(ids, c.ID.String())
	}
	// sorted by order, ties keep document order
	if got := strings.Join(ids, ","); got != "7,japanese,french" {
		t.Errorf("got cuisine order %s, want 7,japanese,french", got)
	}
	if got := p.Cuisines[0].Title(); got != "Brazilian Cuisine" {
		t.Errorf("got title %q", got)
	}
	if p.NumDishes() != 3 {
		t.Errorf("got %d dishes, want 3", p.NumDishes())
	}

	dir := filepath.Dir(path)
	if want := filepath.Join(dir, "images", "ana.jpg"); p.Chef.ProfileImage != want {
		t.Errorf("got profile image %q, want %q", p.Chef.ProfileImage, want)
	}
	japanese := p.FindCuisine("japanese")
	if japanese == nil {
		t.Fatal("japanese cuisine not found")
	}
	if want := filepath.Join(dir, "images", "chirashi.jpg"); japanese.Dishes[0].Image != want {
		t.Errorf("got dish image %q, want %q", japanese.Dishes[0].Image, want)
	}
	if got := strings.Join(japanese.Dishes[0].Tags, ","); got != "Raw,Seafood,Rice" {
		t.Errorf("got tags %s, want Raw,Seafood,Rice", got)
	}
	if got := strings.Join(japanese.Dishes[0].CardTags(), ","); got != "Raw,Seafood" {
		t.Errorf("got card tags %s, want Raw,Seafood", got)
	}

	brazilian := p.Cuisines[0]
	if brazilian.Dishes[0].Image != "https://cdn.example.com/moqueca.jpg" {
		t.Errorf("remote image should be unchanged, got %q", brazilian.Dishes[0].Image)
	}
	if got := strings.Join(brazilian.Dishes[0].Tags, ","); got != "Entrée,Spicy" {
		t.Errorf("got tags %s, want Entrée,Spicy", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	var l Loader
	missing := filepath.Join(t.TempDir(), "nope.json")
	_, err := l.Load(context.Background(), missing)
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected the underlying not-exist error to be wrapped, got %v", err)
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error should name the source, got %q", err.Error())
	}
}

func TestLoad_Malformed(t *testing.T) {
	var l Loader
	_, err := l.Load(context.Background(), writeDoc(t, `{"chef": `))
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	doc := `{
	  "chef": {"name": "  ", "contact": {"email": "not-an-email"}},
	  "cuisines": [
	    {"id": "a", "name": "A", "dishes": [{"name": ""}]},
	    {"id": "a", "name": "", "dishes": []},
	    null
	  ]
	}`
	var l Loader
	_, err := l.Load(context.Background(), writeDoc(t, doc))
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a ValidationError, got %v", err)
	}
	for _, want := range []string{
		"Portfolio.chef.name",
		"Portfolio.chef.contact.email",
		"Portfolio.cuisines[0].dishes[0].name",
		"Portfolio.cuisines[1].name",
		"Portfolio.cuisines[2]",
		`duplicate cuisine id "a"`,
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %s, got:\n%v", want, err)
		}
	}
}

func TestLoad_Remote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/site/data.json":
			w.Write([]byte(sampleDoc))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	var l Loader
	p, err := l.Load(context.Background(), srv.URL+"/site/data.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := srv.URL + "/site/images/ana.jpg"; p.Chef.ProfileImage != want {
		t.Errorf("got profile image %q, want %q", p.Chef.ProfileImage, want)
	}
	if want := srv.URL + "/abs/pao.jpg"; p.Cuisines[0].Dishes[1].Image != want {
		t.Errorf("got root-relative image %q, want %q", p.Cuisines[0].Dishes[1].Image, want)
	}

	_, err = l.Load(context.Background(), srv.URL+"/missing.json")
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("expected ErrDataUnavailable for a 404, got %v", err)
	}
}

func TestDedupeTags(t *testing.T) {
	got := DedupeTags([]string{" Vegan ", "", "VEGAN", "Crème", "creme", "Gluten-free"})
	want := []string{"Vegan", "Crème", "Gluten-free"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("got %v, want %v", got, want)
	}
	if DedupeTags(nil) != nil {
		t.Error("expected nil for nil input")
	}
}

func TestResolveRef(t *testing.T) {
	tests := []struct {
		base, ref, want string
	}{
		{"https://example.com/a/data.json", "img/x.jpg", "https://example.com/a/img/x.jpg"},
		{"https://example.com/a/data.json", "/img/x.jpg", "https://example.com/img/x.jpg"},
		{"https://example.com/a/data.json", "http://other.org/x.jpg", "http://other.org/x.jpg"},
		{filepath.Join("site", "data.json"), "x.jpg", filepath.Join("site", "x.jpg")},
		{"/site/data.json", "/abs/x.jpg", "/abs/x.jpg"},
		{"", "x.jpg", "x.jpg"},
		{"data.json", "", ""},
	}
	for _, tt := range tests {
		if got := ResolveRef(tt.base, tt.ref); got != tt.want {
			t.Errorf("ResolveRef(%q, %q): got %q, want %q", tt.base, tt.ref, got, tt.want)
		}
	}
}

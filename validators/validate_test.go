package validators

import "testing"

type sample struct {
	Slug     string `json:"slug" validate:"omitempty,slug"`
	Username string `form:"username" validate:"required,username"`
	Site     string `json:"site" validate:"omitempty,url"`
}

func TestStruct(t *testing.T) {
	if errs := Struct(&sample{Slug: "go-basics_2", Username: "ada.l@x+y-z"}); errs != nil {
		t.Fatalf("expected valid sample, got %v", errs)
	}

	errs := Struct(&sample{Slug: "Go Basics", Username: "ada lovelace", Site: "nope"})
	for _, field := range []string{"slug", "username", "site"} {
		if errs[field] == "" {
			t.Fatalf("expected an error for %s, got %v", field, errs)
		}
	}

	errs = Struct(&sample{})
	if errs["username"] != "This field is required!" {
		t.Fatalf("expected required message, got %v", errs)
	}
}

package assemble

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"metro-chatbot-be/pkg/dialog"
	"metro-chatbot-be/pkg/dialog/classify"
)

type stubDirectory struct {
	products    []dialog.Record
	productsErr error
	technicians []dialog.Record
	salesmen    []dialog.Record
	employees   []dialog.Record
}

func (d *stubDirectory) LookupProducts(ctx context.Context, query, category string, maxResults int) ([]dialog.Record, error) {
	return d.products, d.productsErr
}

func (d *stubDirectory) LookupTechnicians(ctx context.Context, specialty string, maxResults int) ([]dialog.Record, error) {
	return d.technicians, nil
}

func (d *stubDirectory) LookupSalesmen(ctx context.Context, specialty string, maxResults int) ([]dialog.Record, error) {
	return d.salesmen, nil
}

func (d *stubDirectory) LookupEmployees(ctx context.Context, department, position string, maxResults int) ([]dialog.Record, error) {
	return d.employees, nil
}

func (d *stubDirectory) LookupHistory(ctx context.Context, email string, limit int) ([]dialog.Record, error) {
	return nil, nil
}

func records(n int) []dialog.Record {
	out := make([]dialog.Record, n)
	for i := range out {
		out[i] = dialog.Record{"name": "item"}
	}
	return out
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestFetchJoinsAllSources(t *testing.T) {
	dir := &stubDirectory{
		products:    records(2),
		technicians: records(1),
	}
	a := NewAssembler(dir, testLogger())

	fetched := a.Fetch(context.Background(), []dialog.ToolCall{
		{Source: dialog.SourceProducts, Params: dialog.Params{Query: "solar", MaxResults: 5}},
		{Source: dialog.SourceTechnicians, Params: dialog.Params{MaxResults: 3}},
	})

	if len(fetched[dialog.SourceProducts]) != 2 {
		t.Errorf("products = %d records, want 2", len(fetched[dialog.SourceProducts]))
	}
	if len(fetched[dialog.SourceTechnicians]) != 1 {
		t.Errorf("technicians = %d records, want 1", len(fetched[dialog.SourceTechnicians]))
	}
	if _, queried := fetched[dialog.SourceSalesmen]; queried {
		t.Error("salesmen present in result but was never routed")
	}
}

func TestFetchOneFailingSourceDoesNotAbort(t *testing.T) {
	dir := &stubDirectory{
		productsErr: errors.New("connection refused"),
		salesmen:    records(2),
	}
	a := NewAssembler(dir, testLogger())

	fetched := a.Fetch(context.Background(), []dialog.ToolCall{
		{Source: dialog.SourceProducts, Params: dialog.Params{Query: "solar"}},
		{Source: dialog.SourceSalesmen},
	})

	got, queried := fetched[dialog.SourceProducts]
	if !queried {
		t.Fatal("failed source should be recorded as queried with no results")
	}
	if len(got) != 0 {
		t.Errorf("failed source returned %d records, want 0", len(got))
	}
	if len(fetched[dialog.SourceSalesmen]) != 2 {
		t.Errorf("salesmen = %d records, want 2", len(fetched[dialog.SourceSalesmen]))
	}
}

func TestCapCommonCategorySurfacesNothing(t *testing.T) {
	fetched := dialog.FetchedResult{
		dialog.SourceProducts:  records(5),
		dialog.SourceSalesmen:  records(3),
		dialog.SourceEmployees: records(4),
	}

	rec := Cap(fetched, classify.CategoryCommon)
	if len(rec.Products)+len(rec.Technicians)+len(rec.Salesmen)+len(rec.Employees) != 0 {
		t.Errorf("common category surfaced recommendations: %+v", rec)
	}
}

func TestCapCategoryLimit(t *testing.T) {
	fetched := dialog.FetchedResult{
		dialog.SourceProducts: records(5),
		dialog.SourceSalesmen: records(4),
	}

	rec := Cap(fetched, classify.CategorySalesman)
	max := classify.PolicyFor(classify.CategorySalesman).MaxRecommendations
	if len(rec.Products) > max || len(rec.Salesmen) > max {
		t.Errorf("lists exceed category maximum %d: products %d, salesmen %d",
			max, len(rec.Products), len(rec.Salesmen))
	}
	if rec.ExtraInfo != "Category: salesman" {
		t.Errorf("extra info = %q, want %q", rec.ExtraInfo, "Category: salesman")
	}
}

func TestCapFixedCeilings(t *testing.T) {
	fetched := dialog.FetchedResult{
		dialog.SourceProducts:    records(9),
		dialog.SourceTechnicians: records(9),
		dialog.SourceSalesmen:    records(9),
		dialog.SourceEmployees:   records(9),
	}

	rec := Cap(fetched, "")
	if len(rec.Products) != 5 {
		t.Errorf("products = %d, want 5", len(rec.Products))
	}
	if len(rec.Technicians) != 3 {
		t.Errorf("technicians = %d, want 3", len(rec.Technicians))
	}
	if len(rec.Salesmen) != 2 {
		t.Errorf("salesmen = %d, want 2", len(rec.Salesmen))
	}
	if len(rec.Employees) != 3 {
		t.Errorf("employees = %d, want 3", len(rec.Employees))
	}
	if rec.ExtraInfo != "" {
		t.Errorf("extra info = %q, want empty without a category", rec.ExtraInfo)
	}
}

func TestNextSteps(t *testing.T) {
	rec := dialog.Recommendations{
		Products: records(1),
		Salesmen: records(1),
	}

	got := NextSteps(rec)
	want := []string{"Ask another question", "View more products", "Contact sales", "Start over"}
	if len(got) != len(want) {
		t.Fatalf("NextSteps() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNextStepsEmpty(t *testing.T) {
	got := NextSteps(dialog.Recommendations{})
	want := []string{"Ask another question", "Start over"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("NextSteps() = %v, want %v", got, want)
	}
}

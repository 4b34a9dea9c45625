// Package assemble executes routed lookups against the directory
// collaborator, caps the results per category policy, and builds the
// suggested next inputs. One failing source never aborts the turn.
package assemble

import (
	"context"
	"fmt"
	"log"
	"sync"

	"metro-chatbot-be/pkg/dialog"
	"metro-chatbot-be/pkg/dialog/classify"
)

type handlerFunc func(ctx context.Context, dir dialog.Directory, p dialog.Params) ([]dialog.Record, error)

// handlers maps every routable source to its typed directory method. The
// table is closed; an unknown source is a configuration error surfaced at
// startup through Validate, never per turn.
var handlers = map[dialog.Source]handlerFunc{
	dialog.SourceProducts: func(ctx context.Context, dir dialog.Directory, p dialog.Params) ([]dialog.Record, error) {
		return dir.LookupProducts(ctx, p.Query, p.Category, p.MaxResults)
	},
	dialog.SourceTechnicians: func(ctx context.Context, dir dialog.Directory, p dialog.Params) ([]dialog.Record, error) {
		return dir.LookupTechnicians(ctx, p.Specialty, p.MaxResults)
	},
	dialog.SourceSalesmen: func(ctx context.Context, dir dialog.Directory, p dialog.Params) ([]dialog.Record, error) {
		return dir.LookupSalesmen(ctx, p.Specialty, p.MaxResults)
	},
	dialog.SourceEmployees: func(ctx context.Context, dir dialog.Directory, p dialog.Params) ([]dialog.Record, error) {
		return dir.LookupEmployees(ctx, p.Department, p.Position, p.MaxResults)
	},
	dialog.SourceHistory: func(ctx context.Context, dir dialog.Directory, p dialog.Params) ([]dialog.Record, error) {
		return dir.LookupHistory(ctx, p.Email, p.MaxResults)
	},
}

// Validate checks the handler table covers the full source enumeration.
func Validate() error {
	for _, src := range dialog.KnownSources {
		if _, ok := handlers[src]; !ok {
			return fmt.Errorf("assemble: no handler registered for source %s", src)
		}
	}
	return nil
}

// Fixed per-source ceilings applied when no classifier category is active.
var fixedCeilings = map[dialog.Source]int{
	dialog.SourceProducts:    5,
	dialog.SourceTechnicians: 3,
	dialog.SourceSalesmen:    2,
	dialog.SourceEmployees:   3,
}

// Assembler fans routed calls out to the directory and joins the results.
type Assembler struct {
	directory dialog.Directory
	logger    *log.Logger
}

func NewAssembler(directory dialog.Directory, logger *log.Logger) *Assembler {
	return &Assembler{directory: directory, logger: logger}
}

// Fetch dispatches every call concurrently. The calls share no mutable
// state; results are joined before capping. A source whose lookup fails is
// logged and recorded as an empty result.
func (a *Assembler) Fetch(ctx context.Context, calls []dialog.ToolCall) dialog.FetchedResult {
	fetched := dialog.FetchedResult{}
	if len(calls) == 0 {
		return fetched
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, call := range calls {
		handler, ok := handlers[call.Source]
		if !ok {
			continue
		}
		wg.Add(1)
		go func(call dialog.ToolCall) {
			defer wg.Done()
			records, err := handler(ctx, a.directory, call.Params)
			if err != nil {
				a.logger.Printf("[ASSEMBLE] lookup %s failed: %v", call.Source, err)
				records = []dialog.Record{}
			}
			if records == nil {
				records = []dialog.Record{}
			}
			mu.Lock()
			fetched[call.Source] = records
			mu.Unlock()
		}(call)
	}
	wg.Wait()

	return fetched
}

// Cap trims the fetched results into the surfaced recommendations.
// With a classifier category active, every list is trimmed to the
// category's maximum; the general category surfaces nothing regardless of
// what was fetched. Without a category the fixed per-source ceilings apply.
func Cap(fetched dialog.FetchedResult, category string) dialog.Recommendations {
	rec := dialog.Recommendations{
		Products:    []dialog.Record{},
		Technicians: []dialog.Record{},
		Salesmen:    []dialog.Record{},
		Employees:   []dialog.Record{},
	}

	if category == classify.CategoryCommon {
		rec.ExtraInfo = "Category: " + category
		return rec
	}

	limit := func(src dialog.Source) int {
		if category == "" {
			return fixedCeilings[src]
		}
		return classify.PolicyFor(category).MaxRecommendations
	}

	rec.Products = trim(fetched[dialog.SourceProducts], limit(dialog.SourceProducts))
	rec.Technicians = trim(fetched[dialog.SourceTechnicians], limit(dialog.SourceTechnicians))
	rec.Salesmen = trim(fetched[dialog.SourceSalesmen], limit(dialog.SourceSalesmen))
	rec.Employees = trim(fetched[dialog.SourceEmployees], limit(dialog.SourceEmployees))
	if category != "" {
		rec.ExtraInfo = "Category: " + category
	}
	return rec
}

// NextSteps builds the suggestion list: a base prompt, one entry per
// non-empty source in fixed priority order, then the restart prompt.
func NextSteps(rec dialog.Recommendations) []string {
	steps := []string{"Ask another question"}
	if len(rec.Products) > 0 {
		steps = append(steps, "View more products")
	}
	if len(rec.Technicians) > 0 {
		steps = append(steps, "Contact technician")
	}
	if len(rec.Salesmen) > 0 {
		steps = append(steps, "Contact sales")
	}
	if len(rec.Employees) > 0 {
		steps = append(steps, "View employee details")
	}
	steps = append(steps, "Start over")
	return steps
}

func trim(records []dialog.Record, limit int) []dialog.Record {
	if limit <= 0 || len(records) == 0 {
		return []dialog.Record{}
	}
	if len(records) > limit {
		return records[:limit]
	}
	return records
}

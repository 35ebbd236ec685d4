// Package toolbox exposes the fixed catalog of graph query operations to
// external callers. Operation identifiers form a closed enum, each bound at
// compile time to a typed handler, so a name outside the catalog can only
// fail dispatch and never reaches a query.
package toolbox

import (
	"context"

	"newsgraph/pkg/graph"
)

// Operation identifies one catalog entry.
type Operation int

const (
	OpListIndustries Operation = iota
	OpSearchCompanies
	OpCompaniesInIndustry
	OpArticlesInMonth
	OpArticle
	OpCompaniesInArticles
	OpPeopleAtCompany

	operationCount
)

// Name returns the external operation name.
func (op Operation) Name() string {
	if op < 0 || op >= operationCount {
		return "unknown"
	}
	return catalog[op].name
}

// OperationByName resolves an external name to its catalog entry.
func OperationByName(name string) (Operation, bool) {
	for op := Operation(0); op < operationCount; op++ {
		if catalog[op].name == name {
			return op, true
		}
	}
	return 0, false
}

// Operations returns every catalog operation in declaration order.
func Operations() []Operation {
	ops := make([]Operation, operationCount)
	for i := range ops {
		ops[i] = Operation(i)
	}
	return ops
}

// Args is the flat string-argument mapping of the external boundary. All
// arguments are strings there; the service parses dates itself.
type Args map[string]string

func (a Args) require(op, key string) (string, error) {
	value, ok := a[key]
	if !ok {
		return "", &graph.QueryError{
			Kind:  graph.KindInvalidArgument,
			Op:    op,
			Param: key,
			Msg:   "required parameter is missing",
		}
	}
	return value, nil
}

// Record is one flat result row, field name to string/number/date value.
type Record map[string]any

type paramSpec struct {
	name        string
	description string
	required    bool
}

type operationSpec struct {
	name        string
	description string
	params      []paramSpec
	handler     func(ctx context.Context, service *graph.Service, args Args) ([]Record, error)
}

// catalog binds every operation to its parameter contract and handler. The
// array is indexed by Operation, so adding an identifier without a catalog
// entry is a compile-time mismatch.
var catalog = [operationCount]operationSpec{
	OpListIndustries: {
		name:        graph.OpListIndustries,
		description: "List the names of all industries in the knowledge graph.",
		handler: func(ctx context.Context, service *graph.Service, _ Args) ([]Record, error) {
			names, err := service.ListIndustries(ctx)
			if err != nil {
				return nil, err
			}
			records := make([]Record, 0, len(names))
			for _, name := range names {
				records = append(records, Record{"name": name})
			}
			return records, nil
		},
	},
	OpSearchCompanies: {
		name:        graph.OpSearchCompanies,
		description: "Full-text search over company names and summaries. Returns top-level companies only; subsidiaries are excluded.",
		params: []paramSpec{
			{name: "query", description: "Free-text search over company name and summary.", required: true},
		},
		handler: func(ctx context.Context, service *graph.Service, args Args) ([]Record, error) {
			query, err := args.require(graph.OpSearchCompanies, "query")
			if err != nil {
				return nil, err
			}
			companies, err := service.SearchCompanies(ctx, query)
			if err != nil {
				return nil, err
			}
			return companyRecords(companies), nil
		},
	},
	OpCompaniesInIndustry: {
		name:        graph.OpCompaniesInIndustry,
		description: "List the companies operating in the named industry. Unknown industry names return an empty result.",
		params: []paramSpec{
			{name: "industry", description: "Industry name, as returned by list_industries.", required: true},
		},
		handler: func(ctx context.Context, service *graph.Service, args Args) ([]Record, error) {
			industry, err := args.require(graph.OpCompaniesInIndustry, "industry")
			if err != nil {
				return nil, err
			}
			companies, err := service.CompaniesInIndustry(ctx, industry)
			if err != nil {
				return nil, err
			}
			return companyRecords(companies), nil
		},
	},
	OpArticlesInMonth: {
		name:        graph.OpArticlesInMonth,
		description: "List articles published within one calendar month starting at the given date, sorted ascending by date.",
		params: []paramSpec{
			{name: "date", description: "Window start as an ISO yyyy-mm-dd date.", required: true},
		},
		handler: func(ctx context.Context, service *graph.Service, args Args) ([]Record, error) {
			date, err := args.require(graph.OpArticlesInMonth, "date")
			if err != nil {
				return nil, err
			}
			articles, err := service.ArticlesInMonth(ctx, date)
			if err != nil {
				return nil, err
			}
			records := make([]Record, 0, len(articles))
			for _, a := range articles {
				records = append(records, Record{
					"id":        a.ID,
					"author":    a.Author,
					"title":     a.Title,
					"date":      a.Date.Format(graph.DateFormat),
					"sentiment": a.Sentiment,
				})
			}
			return records, nil
		},
	},
	OpArticle: {
		name:        graph.OpArticle,
		description: "Fetch the full record of a single article by ID. Fails with not_found when the ID does not exist.",
		params: []paramSpec{
			{name: "article_id", description: "Unique article ID.", required: true},
		},
		handler: func(ctx context.Context, service *graph.Service, args Args) ([]Record, error) {
			id, err := args.require(graph.OpArticle, "article_id")
			if err != nil {
				return nil, err
			}
			article, err := service.Article(ctx, id)
			if err != nil {
				return nil, err
			}
			return []Record{{
				"id":        article.ID,
				"author":    article.Author,
				"title":     article.Title,
				"date":      article.Date.Format(graph.DateFormat),
				"sentiment": article.Sentiment,
				"site":      article.Site,
				"summary":   article.Summary,
				"content":   article.Content,
			}}, nil
		},
	},
	OpCompaniesInArticles: {
		name:        graph.OpCompaniesInArticle,
		description: "List the top-level companies mentioned by an article. Unknown article IDs return an empty result.",
		params: []paramSpec{
			{name: "article_id", description: "Unique article ID.", required: true},
		},
		handler: func(ctx context.Context, service *graph.Service, args Args) ([]Record, error) {
			id, err := args.require(graph.OpCompaniesInArticle, "article_id")
			if err != nil {
				return nil, err
			}
			companies, err := service.CompaniesInArticle(ctx, id)
			if err != nil {
				return nil, err
			}
			return companyRecords(companies), nil
		},
	},
	OpPeopleAtCompany: {
		name:        graph.OpPeopleAtCompany,
		description: "List the people associated with a company and the roles they hold there.",
		params: []paramSpec{
			{name: "company_id", description: "Unique company ID.", required: true},
		},
		handler: func(ctx context.Context, service *graph.Service, args Args) ([]Record, error) {
			id, err := args.require(graph.OpPeopleAtCompany, "company_id")
			if err != nil {
				return nil, err
			}
			people, err := service.PeopleAtCompany(ctx, id)
			if err != nil {
				return nil, err
			}
			records := make([]Record, 0, len(people))
			for _, p := range people {
				records = append(records, Record{"name": p.Name, "role": p.Role})
			}
			return records, nil
		},
	},
}

// Toolbox dispatches catalog operations against a graph service.
type Toolbox struct {
	service *graph.Service
}

// New returns a Toolbox over the given service.
func New(service *graph.Service) *Toolbox {
	return &Toolbox{service: service}
}

// Invoke runs one catalog operation with boundary-level string arguments.
func (t *Toolbox) Invoke(ctx context.Context, op Operation, args Args) ([]Record, error) {
	if op < 0 || op >= operationCount {
		return nil, graph.NewUnknownOperation(op.Name())
	}
	if args == nil {
		args = Args{}
	}
	return catalog[op].handler(ctx, t.service, args)
}

// Dispatch resolves an external operation name and invokes it. Names outside
// the catalog fail with unknown_operation before touching the store.
func (t *Toolbox) Dispatch(ctx context.Context, name string, args Args) ([]Record, error) {
	op, ok := OperationByName(name)
	if !ok {
		return nil, graph.NewUnknownOperation(name)
	}
	return t.Invoke(ctx, op, args)
}

func companyRecords(companies []graph.Company) []Record {
	records := make([]Record, 0, len(companies))
	for _, c := range companies {
		records = append(records, Record{
			"id":      c.ID,
			"name":    c.Name,
			"summary": c.Summary,
		})
	}
	return records
}

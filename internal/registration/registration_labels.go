package registration

// Option pairs a stored identifier with its human-readable label.
type Option struct {
	ID    string
	Label string
}

// BusinessOpportunityOptions lists the entrepreneurship section in display
// order. The stored value is always the ID; labels only appear in rendered
// output.
var BusinessOpportunityOptions = []Option{
	{ID: "financial_freedom", Label: "Financial and Time Freedom"},
	{ID: "own_business", Label: "Owning Your Own Business (No Business Experience Required)"},
	{ID: "successful_entrepreneur", Label: "Becoming a Successful Entrepreneur"},
	{ID: "million_income", Label: "Million Dollar Income (Dreamer)"},
}

var WealthSolutionOptions = []Option{
	{ID: "protection_planning", Label: "Protection Planning"},
	{ID: "investment_planning", Label: "Investment Planning"},
	{ID: "college_tuition", Label: "College Tuition Planning"},
	{ID: "lifetime_income", Label: "Lifetime Income, Guaranteed Income Stream"},
	{ID: "will_trust", Label: "Will & Trust (W&T), Estate Planning"},
	{ID: "tax_optimization", Label: "Tax Optimization"},
	{ID: "retirement", Label: "Retirement"},
	{ID: "legacy", Label: "Legacy"},
	// {ID: "business_solutions", Label: "Business Solutions (Entry/Exit, Key Person, etc.)"},
	// {ID: "health_insurance", Label: "Health Insurance, Medicare and Medicaid"},
	// {ID: "notary_services", Label: "Notary Services"},
}

var (
	BusinessOpportunityLabels = labelTable(BusinessOpportunityOptions)
	WealthSolutionLabels      = labelTable(WealthSolutionOptions)
)

func labelTable(opts []Option) map[string]string {
	table := make(map[string]string, len(opts))
	for _, o := range opts {
		table[o.ID] = o.Label
	}
	return table
}

// LabelsFor resolves ids through a label table. The lookup is total: ids
// without a label pass through verbatim.
func LabelsFor(ids []string, labels map[string]string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if label, ok := labels[id]; ok {
			out = append(out, label)
			continue
		}
		out = append(out, id)
	}
	return out
}

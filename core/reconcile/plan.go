package reconcile

// Plan analyses entries and reconciles them with opts, listing every change.
// It never fails; empty input yields an empty plan.
func Plan(entries []LineEntry, opts Options) *ReconcilePlan {
	plan := &ReconcilePlan{
		Report:  Analyze(entries),
		Actions: []Action{},
	}

	plan.Sequence = run(entries, opts, func(a Action) {
		plan.Actions = append(plan.Actions, a)
	})

	plan.Summary = PlanSummary{
		TotalLines: len(entries),
		Missing:    len(plan.Report.Missing),
		Duplicates: len(plan.Report.Duplicates),
	}
	for _, a := range plan.Actions {
		switch a.Type {
		case ActionInsertPlaceholder:
			plan.Summary.PlaceholdersInserted++
		case ActionRenumber:
			plan.Summary.Renumbered++
		}
	}

	return plan
}

// HasChanges reports whether applying the plan changes the document.
func (p *ReconcilePlan) HasChanges() bool {
	return len(p.Actions) > 0
}

package model

// All returns every model managed by auto-migration, in dependency order.
func All() []any {
	return []any{
		&UserModel{},
		&RecurringEntryModel{},
		&EntryModel{},
		&GoalModel{},
		&AssetModel{},
	}
}

package entity

// All lists every table the service owns, in dependency order.
func All() []any {
	return []any{&Menu{}, &Recipe{}, &MenuItem{}, &Ingredient{}, &MethodStep{}}
}

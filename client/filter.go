package client

// TenantScoped is any entity carrying a unit partition key.
type TenantScoped interface {
	TenantID() string
}

// FilterByUnit projects a collection down to one unit. The source is
// never mutated and relative order is preserved; an unknown unit id
// simply yields an empty result.
func FilterByUnit[T TenantScoped](items []T, unitID string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.TenantID() == unitID {
			out = append(out, item)
		}
	}
	return out
}

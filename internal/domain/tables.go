package domain

// Tables lists every entity auto-migrated at startup.
var Tables = []interface{}{
	&Product{},
}

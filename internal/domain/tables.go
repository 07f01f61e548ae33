package domain

var Tables = []interface{}{
	// System
	&SysConfig{},
	// Accounts
	&User{},
	&FUser{},
	&CustomerUser{},
	// Catalog
	&Product{},
}

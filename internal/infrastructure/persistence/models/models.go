package models

// All lists every model for schema migration, parents first.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&ProductModel{},
		&PurchaseModel{},
		&TransactionModel{},
	}
}

package integration_test

const (
	// User related constants
	TestUserFirstName = "Jan"
	TestUserLastName  = "Kowalski"
	TestUserPassword  = "Test123!@#"

	// Token related constants
	TestToken = "r8zEhnVzNTZDf8WypfYBTU_FkFUm9jXnTmMrK-WuFQ8"
)

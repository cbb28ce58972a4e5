package models

// Category names seeded for every new account. The names (typos included)
// follow the data set the product shipped with.
var (
	PredefinedExpenseCategories = []string{
		"CREDIT CARDS", "LOANS", "TAXES", "TUTION", "BOOKS", "GAMES", "Hobbies",
		"Movies", "Outdoor activities", "TV", "Groceries", "Restaurants",
		"Personal supplies", "Clothes", "Gifts", "Donations (charity)",
		"Doctors/dental/vision", "Pharmacy", "Emergency", "Rent/mortgage",
		"Property taxes", "Maintenance", "Improvements", "VECHILE", "Health",
		"Life", "Food", "Vet/medical", "Toys", "Supplies", "Online services",
		"Hardware", "Software", "Fuel", "VECHILE payments", "Repairs",
		"Registration/license", "Public transit", "Hotels", "Transportation",
		"Entertainment", "Phone", "Internet", "Electricity", "mutual fund stocks",
		"Other",
	}

	PredefinedIncomeCategories = []string{
		"Paycheck", "intrest", "Bonus", "Commission", "Transfer from savings",
		"Interest income", "Dividends", "Gifts", "Refunds", "Other",
	}
)

package models

// Transaction categories offered by the dashboard forms. Category is free text on the
// record; these are the values the sample data and the demo seeder use.
const (
	CategoryIncome        = "Income"
	CategoryHousing       = "Housing"
	CategoryGroceries     = "Groceries"
	CategoryDining        = "Dining"
	CategoryTransport     = "Transportation"
	CategoryUtilities     = "Utilities"
	CategoryEntertainment = "Entertainment"
	CategoryShopping      = "Shopping"
	CategoryHealthcare    = "Healthcare"
	CategoryTravel        = "Travel"
	CategorySavings       = "Savings"
	CategoryOther         = "Other"
)

// Goal categories
const (
	GoalCategoryEmergencyFund = "Emergency Fund"
	GoalCategoryTravel        = "Travel"
	GoalCategoryHome          = "Home"
	GoalCategoryVehicle       = "Vehicle"
	GoalCategoryEducation     = "Education"
	GoalCategoryRetirement    = "Retirement"
)

// ExpenseCategories returns the categories used for debit transactions
func ExpenseCategories() []string {
	return []string{
		CategoryHousing,
		CategoryGroceries,
		CategoryDining,
		CategoryTransport,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryShopping,
		CategoryHealthcare,
		CategoryTravel,
		CategoryOther,
	}
}

// GoalCategories returns all goal categories
func GoalCategories() []string {
	return []string{
		GoalCategoryEmergencyFund,
		GoalCategoryTravel,
		GoalCategoryHome,
		GoalCategoryVehicle,
		GoalCategoryEducation,
		GoalCategoryRetirement,
	}
}

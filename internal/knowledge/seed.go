package knowledge

// seedEntries are the built-in answers about the app's sections, inserted
// on first run.
var seedEntries = []Entry{
	{
		Topic:    "mission",
		Keywords: "mission, about, what is cashlens, what is domus, purpose",
		Answer:   "CashLens is a personal finance dashboard that gathers your banks, groceries, school, utilities, and work finances into one place so you always know where your money goes.",
	},
	{
		Topic:    "banks",
		Keywords: "bank, banks, account, accounts, balance, linked",
		Answer:   "The Banks section lists your linked accounts and balances. Connect a bank from there to pull in transactions automatically.",
	},
	{
		Topic:    "groceries",
		Keywords: "grocery, groceries, shopping list, food budget",
		Answer:   "The Groceries section tracks your food spending and keeps a shared shopping list so recurring items never get forgotten.",
	},
	{
		Topic:    "school",
		Keywords: "school, tuition, education, fees, activity costs",
		Answer:   "The School section tracks tuition payments, school fees, and activity costs, and helps you grow an education savings fund.",
	},
	{
		Topic:    "utilities",
		Keywords: "utility, utilities, electric, electricity, water, gas, internet, bill, bills",
		Answer:   "The Utilities section tracks your monthly household bills — electricity, water, gas, internet and more — and flags upcoming due dates.",
	},
	{
		Topic:    "work",
		Keywords: "work, income, earnings, business expense, mileage, deduction, tax",
		Answer:   "The Work section manages professional earnings, business expenses, mileage logs, and tax deductions.",
	},
	{
		Topic:    "spending analyzer",
		Keywords: "analyzer, analyze, spending analyzer, report, breakdown",
		Answer:   "The Spending Analyzer breaks down your transactions by category and period. It opens in its own page because it runs independent charting tools.",
	},
	{
		Topic:    "budgeting",
		Keywords: "budget, budgets, overspent, save, saving, cut back",
		Answer:   "Set a monthly budget per category, and CashLens will flag categories you overspend in and suggest one concrete action to get back on track.",
	},
}

package server

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// pages holds the fragment documents served to the navigation layer. Each
// document carries a <title> and a <main> region; the client extracts the
// <main> content and swaps it into the content area.
var pages = map[string]string{
	"home.html": `<!DOCTYPE html>
<html lang="en">
<head><title>Home &mdash; CashLens</title></head>
<body>
<main>
  <h1>Welcome to CashLens</h1>
  <p>Your personal finance dashboard. Pick a section to see where your money goes.</p>
  <ul class="section-list">
    <li><a href="/banks">Banks</a> &mdash; accounts and balances</li>
    <li><a href="/groceries">Groceries</a> &mdash; food and household spending</li>
    <li><a href="/school">School</a> &mdash; tuition and supplies</li>
    <li><a href="/utilities">Utilities</a> &mdash; power, water, internet</li>
    <li><a href="/work">Work</a> &mdash; income and commute costs</li>
  </ul>
</main>
</body>
</html>`,

	"banks.html": `<!DOCTYPE html>
<html lang="en">
<head><title>Banks &mdash; CashLens</title></head>
<body>
<main>
  <h1>Bank Accounts</h1>
  <p>All your linked accounts in one place.</p>
  <table class="accounts">
    <tr><th>Account</th><th>Type</th><th>Balance</th></tr>
    <tr><td>Everyday Checking</td><td>Checking</td><td>$2,418.77</td></tr>
    <tr><td>Rainy Day Fund</td><td>Savings</td><td>$8,902.10</td></tr>
    <tr><td>Travel Card</td><td>Credit</td><td>-$312.45</td></tr>
  </table>
</main>
</body>
</html>`,

	"groceries.html": `<!DOCTYPE html>
<html lang="en">
<head><title>Groceries &mdash; CashLens</title></head>
<body>
<main>
  <h1>Grocery Spending</h1>
  <p>Food and household purchases for this month.</p>
  <ul class="spend-list">
    <li>Supermarket runs: $342.18</li>
    <li>Farmers market: $58.50</li>
    <li>Household supplies: $74.02</li>
  </ul>
  <p class="hint">Tip: weekly meal planning tends to cut grocery spending by 10-15%.</p>
</main>
</body>
</html>`,

	"school.html": `<!DOCTYPE html>
<html lang="en">
<head><title>School &mdash; CashLens</title></head>
<body>
<main>
  <h1>School Expenses</h1>
  <p>Tuition, supplies, and activity fees.</p>
  <ul class="spend-list">
    <li>Tuition installment: $650.00</li>
    <li>Books and supplies: $89.30</li>
    <li>After-school activities: $120.00</li>
  </ul>
</main>
</body>
</html>`,

	"utilities.html": `<!DOCTYPE html>
<html lang="en">
<head><title>Utilities &mdash; CashLens</title></head>
<body>
<main>
  <h1>Utility Bills</h1>
  <p>Recurring household services.</p>
  <table class="bills">
    <tr><th>Service</th><th>Due</th><th>Amount</th></tr>
    <tr><td>Electricity</td><td>15th</td><td>$94.20</td></tr>
    <tr><td>Water</td><td>20th</td><td>$38.75</td></tr>
    <tr><td>Internet</td><td>1st</td><td>$59.99</td></tr>
  </table>
</main>
</body>
</html>`,

	"work.html": `<!DOCTYPE html>
<html lang="en">
<head><title>Work &mdash; CashLens</title></head>
<body>
<main>
  <h1>Work &amp; Income</h1>
  <p>Salary, side income, and commute costs.</p>
  <ul class="spend-list">
    <li>Monthly salary: $4,800.00</li>
    <li>Freelance projects: $620.00</li>
    <li>Commute (transit pass): $86.00</li>
  </ul>
</main>
</body>
</html>`,
}

// handlePage serves one fragment document by filename.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "page")
	doc, ok := pages[name]
	if !ok {
		log.Printf("server: unknown page requested: %s", name)
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(doc))
}

package currency

import (
	"math"

	"github.com/Rhymond/go-money"
)

// USD renders an amount the way the console shows salaries, e.g. "$75,000.50".
func USD(amount float64) string {
	return money.NewFromFloat(amount, money.USD).Display()
}

var wholeDollars = money.NewFormatter(0, ".", ",", "$", "$1")

// USDWhole rounds to whole dollars, e.g. "$75,001".
func USDWhole(amount float64) string {
	return wholeDollars.Format(int64(math.Round(amount)))
}

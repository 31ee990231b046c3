package routes

import (
	"bookie/controllers/account"
	"bookie/controllers/bet"
	"bookie/controllers/callback/provider"
	"bookie/controllers/funding"
	"bookie/controllers/settlement"
	"bookie/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	// wagering surface
	app.Post("/bets", bet.Place)
	app.Get("/bets/:id", bet.Status)

	// read-only account views
	app.Post("/accounts", account.Register)
	app.Get("/accounts/:code/snapshot", account.Snapshot)
	app.Get("/accounts/:code/transactions", account.Transactions)

	// self-service funding requests
	app.Post("/funding/deposits", funding.RequestDeposit)
	app.Post("/funding/withdrawals", funding.RequestWithdrawal)

	// staff tooling
	staff := app.Group("/staff", middlewares.StaffAuth())
	staff.Post("/settlements", settlement.Settle)
	staff.Post("/funding/deposits/:id/decision", funding.DecideDeposit)
	staff.Post("/funding/withdrawals/:id/decision", funding.DecideWithdrawal)
	staff.Post("/accounts/:code/exposure-limit", account.SetExposureLimit)

	// provider callbacks
	callback := app.Group("/callback/provider", middlewares.ProviderAuth())
	callback.Post("/exposure", provider.ExposurePush)
}

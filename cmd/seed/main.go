// Command seed loads the default pricing rules and, when requested,
// a set of demo student accounts for local development.
package main

import (
	"flag"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"printdesk/internal/config"
	"printdesk/internal/logger"
	"printdesk/internal/models"
	"printdesk/internal/repositories"
)

var defaultRules = []models.PricingRule{
	{PaperSize: models.PaperSizeA4, PrintType: models.PrintTypeBlackWhite, CostPerPage: decimal.RequireFromString("0.10")},
	{PaperSize: models.PaperSizeA4, PrintType: models.PrintTypeColor, CostPerPage: decimal.RequireFromString("0.50")},
	{PaperSize: models.PaperSizeA3, PrintType: models.PrintTypeBlackWhite, CostPerPage: decimal.RequireFromString("0.20")},
	{PaperSize: models.PaperSizeA3, PrintType: models.PrintTypeColor, CostPerPage: decimal.RequireFromString("1.00")},
	{PaperSize: models.PaperSizeLetter, PrintType: models.PrintTypeBlackWhite, CostPerPage: decimal.RequireFromString("0.10")},
	{PaperSize: models.PaperSizeLetter, PrintType: models.PrintTypeColor, CostPerPage: decimal.RequireFromString("0.50")},
}

func main() {
	demo := flag.Bool("demo", false, "also create demo student accounts")
	flag.Parse()

	config.LoadEnv()
	logger.Init(config.IsProduction())
	log := logger.Log

	if err := repositories.InitDB(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer repositories.CloseDB()

	for _, rule := range defaultRules {
		var existing models.PricingRule
		err := repositories.DB.
			Where("paper_size = ? AND print_type = ?", rule.PaperSize, rule.PrintType).
			First(&existing).Error
		if err == nil {
			continue
		}
		if err := repositories.DB.Create(&rule).Error; err != nil {
			log.Fatal().Err(err).Str("paper_size", rule.PaperSize).Msg("failed to seed pricing rule")
		}
		log.Info().
			Str("paper_size", rule.PaperSize).
			Str("print_type", rule.PrintType).
			Str("cost_per_page", rule.CostPerPage.StringFixed(2)).
			Msg("pricing rule seeded")
	}

	if !*demo {
		return
	}

	accounts := repositories.NewAccountRepository(repositories.DB)
	for i := 1; i <= 3; i++ {
		number := fmt.Sprintf("S%06d", i)
		if _, err := accounts.GetByStudentNumber(number); err == nil {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte("changeme"), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to hash demo credential")
		}
		student := &models.Student{
			StudentNumber:  number,
			FullName:       fmt.Sprintf("Demo Student %d", i),
			Email:          fmt.Sprintf("demo%d@campus.test", i),
			CredentialHash: string(hash),
			Department:     "Computer Science",
		}
		if err := accounts.CreateWithWallet(student); err != nil {
			log.Fatal().Err(err).Str("student_number", number).Msg("failed to seed demo student")
		}
		log.Info().Str("student_number", number).Msg("demo student seeded")
	}
}

package repositories

import "printdesk/internal/models"

// AccountRepository manages student records and their linked wallets.
type AccountRepository interface {
	// CreateWithWallet inserts the student and an empty wallet in one
	// transaction: both rows or neither. Returns ErrDuplicateKey when
	// the student number or email is taken.
	CreateWithWallet(student *models.Student) error

	GetByID(id uint) (*models.Student, error)
	GetByStudentNumber(number string) (*models.Student, error)
	GetByEmail(email string) (*models.Student, error)
	UpdateProfile(id uint, profile models.Profile) error
}

package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"printdesk/internal/models"
)

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) CreateWithWallet(student *models.Student) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(student).Error; err != nil {
			return err
		}
		wallet := &models.Wallet{StudentID: student.ID}
		if err := tx.Create(wallet).Error; err != nil {
			return err
		}
		student.Wallet = wallet
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create account: %w", classifyPgError(err))
	}
	return nil
}

func (r *accountRepository) GetByID(id uint) (*models.Student, error) {
	var student models.Student
	if err := r.db.First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return &student, nil
}

func (r *accountRepository) GetByStudentNumber(number string) (*models.Student, error) {
	var student models.Student
	if err := r.db.Where("student_number = ?", number).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return &student, nil
}

func (r *accountRepository) GetByEmail(email string) (*models.Student, error) {
	var student models.Student
	if err := r.db.Where("email = ?", email).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return &student, nil
}

func (r *accountRepository) UpdateProfile(id uint, profile models.Profile) error {
	student, err := r.GetByID(id)
	if err != nil {
		return err
	}
	student.UpdateProfile(profile, time.Now())
	if err := r.db.Save(student).Error; err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	return nil
}

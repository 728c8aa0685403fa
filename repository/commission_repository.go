package repository

import (
	"errors"

	"github.com/BETACRD01/delibery-sub000/entity"
	"gorm.io/gorm"
)

type CommissionRuleRepository struct{ DB *gorm.DB }

func NewCommissionRuleRepository(db *gorm.DB) *CommissionRuleRepository {
	return &CommissionRuleRepository{DB: db}
}

// FindRule resolves the rule for a subject: the row scoped to the exact
// subject id wins, otherwise the default row (subject_id NULL), otherwise
// nil — the caller falls back to configured defaults.
func (r *CommissionRuleRepository) FindRule(subject string, subjectID uint) (*entity.CommissionRule, error) {
	var rule entity.CommissionRule
	err := r.DB.Where("subject = ? AND subject_id = ?", subject, subjectID).First(&rule).Error
	if err == nil {
		return &rule, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = r.DB.Where("subject = ? AND subject_id IS NULL", subject).First(&rule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *CommissionRuleRepository) Upsert(rule *entity.CommissionRule) error {
	var exist entity.CommissionRule
	q := r.DB.Where("subject = ?", rule.Subject)
	if rule.SubjectID == nil {
		q = q.Where("subject_id IS NULL")
	} else {
		q = q.Where("subject_id = ?", *rule.SubjectID)
	}
	err := q.First(&exist).Error
	if err == nil {
		exist.Percent = rule.Percent
		exist.Flat = rule.Flat
		return r.DB.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.DB.Create(rule).Error
}

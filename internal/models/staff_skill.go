package models

// Compétence d'un(e) employé(e) pour une catégorie de prestations.
// Une ligne autorise la réservation de l'employé(e) sur toute la catégorie.
type StaffSkill struct {
	ProfileID  string `gorm:"type:text;primaryKey" json:"profile_id"`
	CategoryID uint   `gorm:"primaryKey" json:"category_id"`
}

func (StaffSkill) TableName() string {
	return "staff_skills"
}

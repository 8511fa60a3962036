package dto

import "time"

// CalendarEventDTO alimente la grille du calendrier : un événement par
// rendez-vous visible (non annulé, employé dans le filtre).
type CalendarEventDTO struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Status     string    `json:"status"`
	ClientName string    `json:"client_name"`
	StaffID    string    `json:"staff_id"`
	StaffName  string    `json:"staff_name"`
	StaffColor string    `json:"staff_color"`
	Service    string    `json:"service"`
	Category   string    `json:"category"`
}

// DayAppointmentDTO : une ligne de l'agenda journalier d'un(e) employé(e).
type DayAppointmentDTO struct {
	ID         string    `json:"id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	ClientName string    `json:"client_name"`
	Phone      string    `json:"phone"`
	Service    string    `json:"service"`
	Duration   int       `json:"duration"`
	Price      int       `json:"price"`
}

// DayScheduleDTO : agenda d'une journée avec ses compteurs de synthèse.
type DayScheduleDTO struct {
	StaffID      string              `json:"staff_id"`
	Date         string              `json:"date"`
	Appointments []DayAppointmentDTO `json:"appointments"`
	Total        int                 `json:"total"`
	Pending      int                 `json:"pending"`
	Confirmed    int                 `json:"confirmed"`
	Completed    int                 `json:"completed"`
}

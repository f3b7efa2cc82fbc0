package models

import "time"

// Статусы дневной записи посещаемости персонала.
const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
)

// AttendanceRecord представляет дневную запись посещаемости техника.
// На пару (техник, дата) существует не более одной записи.
// HoursWorked имеет смысл только при статусе present; при absent
// часы принудительно обнуляются.
type AttendanceRecord struct {
	ID            int       // Идентификатор записи
	TechnicianUID string    // Идентификатор техника
	WorkDate      time.Time // Рабочий день
	Status        string    // present или absent
	HoursWorked   float64   // Отработанные часы (>= 0)
}

// DummyAttendance используется для приёма записи посещаемости из JSON-запроса.
type DummyAttendance struct {
	TechnicianUID string  `json:"technician_uid" validate:"required,uuid"`
	WorkDate      string  `json:"work_date" validate:"required,datetime=02-01-2006"`
	Status        string  `json:"status" validate:"required,oneof=present absent"`
	HoursWorked   float64 `json:"hours_worked" validate:"omitempty,gte=0"`
}

package auth

// Policy хранит фиксированный список админов из конфигурации
type Policy struct {
	adminIDs []int64
	admins   map[int64]bool
}

func NewPolicy(adminIDs []int64) *Policy {
	admins := make(map[int64]bool, len(adminIDs))

	for _, id := range adminIDs {
		admins[id] = true
	}

	return &Policy{
		adminIDs: adminIDs,
		admins:   admins,
	}
}

func (p *Policy) IsAdmin(userID int64) bool {
	return p.admins[userID]
}

// AdminIDs возвращает список для рассылки уведомлений о новых предложениях
func (p *Policy) AdminIDs() []int64 {
	return p.adminIDs
}

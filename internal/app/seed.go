package service

import "github.com/agendapro/agendapro/internal/domain/model"

// demoAppointments is the demo week loaded when seeding is enabled.
func demoAppointments() []model.Appointment {
	return []model.Appointment{
		{
			ID:          "1",
			ClientName:  "Sarah Johnson",
			ClientEmail: "sarah.j@email.com",
			ClientPhone: "+1 (555) 123-4567",
			ServiceName: "Haircut",
			StaffMember: "Anna",
			Day:         0,
			StartTime:   9,
			Duration:    0.75,
			Color:       "blue",
			Status:      model.StatusConfirmed,
		},
		{
			ID:          "2",
			ClientName:  "Mike Chen",
			ClientEmail: "mike.chen@email.com",
			ClientPhone: "+1 (555) 234-5678",
			ServiceName: "Hair Coloring",
			StaffMember: "Mark",
			Day:         0,
			StartTime:   10,
			Duration:    1.5,
			Color:       "purple",
			Status:      model.StatusConfirmed,
		},
		{
			ID:          "3",
			ClientName:  "Emma Davis",
			ClientEmail: "emma.davis@email.com",
			ClientPhone: "+1 (555) 345-6789",
			ServiceName: "Manicure",
			StaffMember: "Anna",
			Day:         1,
			StartTime:   11,
			Duration:    0.5,
			Color:       "green",
			Status:      model.StatusConfirmed,
		},
		{
			ID:          "4",
			ClientName:  "John Smith",
			ClientEmail: "john.smith@email.com",
			ClientPhone: "+1 (555) 456-7890",
			ServiceName: "Facial Treatment",
			StaffMember: "Anna",
			Day:         2,
			StartTime:   14,
			Duration:    1,
			Color:       "orange",
			Status:      model.StatusConfirmed,
		},
		{
			ID:          "5",
			ClientName:  "Lisa Brown",
			ClientEmail: "lisa.brown@email.com",
			ClientPhone: "+1 (555) 567-8901",
			ServiceName: "Pedicure",
			StaffMember: "Mark",
			Day:         3,
			StartTime:   15,
			Duration:    0.75,
			Color:       "pink",
			Status:      model.StatusConfirmed,
		},
	}
}

// demoTimeBlocks is the demo staff availability loaded alongside the week.
func demoTimeBlocks() []model.TimeBlock {
	return []model.TimeBlock{
		{
			ID:          "b1",
			StaffMember: "Anna",
			Day:         0,
			StartTime:   12,
			Duration:    1,
			BlockType:   model.BlockBreak,
			Title:       "Lunch",
		},
		{
			ID:          "b2",
			StaffMember: "Mark",
			Day:         2,
			StartTime:   16,
			Duration:    1,
			BlockType:   model.BlockMeeting,
			Title:       "Team meeting",
		},
	}
}

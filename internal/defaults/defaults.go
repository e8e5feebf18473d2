// Package defaults holds the document every fresh account starts from.
package defaults

import (
	"time"

	"github.com/glowstudio/landing-builder/internal/models"
)

const dateLayout = "2006-01-02"

// Document returns a fresh default site. The clock is a parameter so reset is
// reproducible in tests; embedded dates are derived from it.
func Document(now time.Time) *models.LandingPageData {
	return &models.LandingPageData{
		Hero: &models.HeroData{
			Title:           "Студия красоты Анны",
			Subtitle:        "Эксперт по макияжу и нейл-арту",
			CTA:             "Записаться",
			BackgroundImage: "https://picsum.photos/seed/bg/1200/800",
		},
		About: models.AboutData{
			Text: "Имея более 10 лет опыта в индустрии красоты, я посвящаю себя предоставлению высококачественных услуг, " +
				"которые помогут вам почувствовать себя красивыми и уверенными. Моя студия — это место релаксации и преображения. " +
				"Я специализируюсь на свадебном макияже, креативном нейл-арте и персональных консультациях по уходу за кожей.",
			ImageURL: "https://picsum.photos/seed/master/400/400",
		},
		Services: []models.Service{
			{ID: "1", Name: "Классический маникюр", Description: "Вечная классика для красивых ногтей.", Price: 1500, Duration: 60},
			{ID: "2", Name: "Гелевый педикюр", Description: "Долговечный цвет и блеск для ваших ногтей.", Price: 2500, Duration: 75},
			{ID: "3", Name: "Свадебный макияж", Description: "Выглядите сногсшибательно в ваш особенный день.", Price: 5000, Duration: 120},
			{ID: "4", Name: "Ламинирование ресниц", Description: "Подчеркните красоту ваших натуральных ресниц.", Price: 2000, Duration: 60},
		},
		Portfolio: []models.PortfolioImage{
			{ID: "1", URL: "https://picsum.photos/seed/makeup1/600/400", Alt: "Элегантный макияж"},
			{ID: "2", URL: "https://picsum.photos/seed/nails1/600/400", Alt: "Сложный нейл-арт"},
			{ID: "3", URL: "https://picsum.photos/seed/bride/600/400", Alt: "Свадебный образ"},
			{ID: "4", URL: "https://picsum.photos/seed/nails2/600/400", Alt: "Гелевый дизайн ногтей"},
		},
		Theme: models.Theme{
			Primary:    "#D946EF",
			Background: "#FFFFFF",
			Text:       "#1F2937",
			Card:       "#F9FAFB",
		},
		Appointments: []models.Appointment{
			{ID: "1", ClientName: "Анна Иванова", ServiceName: "Классический маникюр", Date: now.Format(dateLayout), Time: "10:00"},
			{ID: "2", ClientName: "Елена Смирнова", ServiceName: "Свадебный макияж", Date: now.Add(24 * time.Hour).Format(dateLayout), Time: "14:30"},
		},
		Clients: []models.Client{
			{
				ID:           "1",
				Name:         "Анна Иванова",
				Phone:        "+7-912-345-67-89",
				Email:        "anna.i@example.com",
				Notes:        "Предпочитает светло-розовый лак.",
				VisitHistory: []time.Time{now},
			},
			{
				ID:           "2",
				Name:         "Елена Смирнова",
				Phone:        "+7-923-456-78-90",
				Email:        "elena.s@example.com",
				Notes:        "Аллергия на латекс.",
				VisitHistory: []time.Time{now.Add(-10 * 24 * time.Hour)},
			},
		},
		Contact: models.ContactData{
			Address: "г. Москва, ул. Красивая, д. 15",
			Phone:   "+7 (495) 123-45-67",
			Email:   "hello@annabeauty.com",
		},
		Socials: models.SocialData{
			Instagram: "https://instagram.com",
			Telegram:  "https://t.me",
			VK:        "https://vk.com",
		},
		Testimonials: []models.Testimonial{
			{ID: "t1", ClientName: "Мария К.", Text: "Анна - настоящий профессионал! Мой свадебный макияж был безупречен и держался весь день. Огромное спасибо!", Rating: 5},
			{ID: "t2", ClientName: "Светлана В.", Text: "Всегда делаю маникюр только здесь. Ногти выглядят идеально, а атмосфера в студии очень расслабляет.", Rating: 5},
			{ID: "t3", ClientName: "Екатерина П.", Text: "Очень довольна ламинированием ресниц. Эффект потрясающий, взгляд стал более открытым и выразительным.", Rating: 4},
		},
	}
}

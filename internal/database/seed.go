package database

import (
	"log"
	"strconv"

	"vegete-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func hashPassword(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Нууц үг hash-лагдсангүй: %v", err)
	}
	return string(hash)
}

func strPtr(s string) *string { return &s }

// Seed: анхны өгөгдлийг нэг л удаа оруулна. Идемпотент шалгалт нь санах ойн
// туг биш, сан дахь хэрэглэгчийн мөрийн тоо — олон instance зэрэг асахад
// давхар seed хийхгүй.
func Seed() {
	var userCount int64
	if err := DB.Model(&models.User{}).Count(&userCount).Error; err != nil {
		log.Fatalf("Seed шалгалт амжилтгүй: %v", err)
	}
	if userCount > 0 {
		log.Println("Database already seeded, skipping...")
		return
	}

	log.Println("Seeding database...")

	admin := models.User{
		Username: "admin",
		Password: hashPassword("admin123"),
		FullName: "Ерөнхий Админ",
		Role:     models.RoleSuperAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Fatalf("Админ үүсгэж чадсангүй: %v", err)
	}

	branches := []models.Branch{
		{Name: "Төв салбар", Address: "Сүхбаатар дүүрэг, Бага тойруу 15", Phone: "+976 7711-2233", City: "Улаанбаатар", Country: "Монгол", OperatingCost: 5000000, Hours: "Даваа - Баасан: 06:00 - 22:00\nБямба - Ням: 08:00 - 20:00"},
		{Name: "Баянгол салбар", Address: "Баянгол дүүрэг, Энхтайвны өргөн чөлөө 23", Phone: "+976 7711-4455", City: "Улаанбаатар", Country: "Монгол", OperatingCost: 4000000, Hours: "Даваа - Баасан: 06:00 - 22:00\nБямба - Ням: 08:00 - 20:00"},
		{Name: "Хан-Уул салбар", Address: "Хан-Уул дүүрэг, Чингисийн өргөн чөлөө 40", Phone: "+976 7711-6677", City: "Улаанбаатар", Country: "Монгол", OperatingCost: 3500000, Hours: "Даваа - Баасан: 06:00 - 22:00\nБямба - Ням: 08:00 - 20:00"},
	}
	for i := range branches {
		branches[i].IsActive = true
		if err := DB.Create(&branches[i]).Error; err != nil {
			log.Fatalf("Салбар үүсгэж чадсангүй: %v", err)
		}
	}

	managers := []models.User{
		{Username: "manager1", Password: hashPassword("pass123"), FullName: "Болд Батбаяр", Role: models.RoleBranchManager, BranchID: &branches[0].ID},
		{Username: "manager2", Password: hashPassword("pass123"), FullName: "Сарнай Ганболд", Role: models.RoleBranchManager, BranchID: &branches[1].ID},
	}
	for i := range managers {
		if err := DB.Create(&managers[i]).Error; err != nil {
			log.Fatalf("Менежер үүсгэж чадсангүй: %v", err)
		}
	}

	trainers := []models.Trainer{
		{FirstName: "Бат-Эрдэнэ", LastName: "Отгонбаяр", Phone: "99112233", Email: strPtr("baterdene@vegete.mn"), Certification: "NASM-CPT, CrossFit L3", Specialty: "CrossFit, Хүч чадал", BranchID: branches[0].ID, Salary: 2000000},
		{FirstName: "Сарантуяа", LastName: "Батбаяр", Phone: "99223344", Email: strPtr("sarantuya@vegete.mn"), Certification: "ACE-CPT, RYT-500", Specialty: "Йог, Уян хатан", BranchID: branches[0].ID, Salary: 1800000},
		{FirstName: "Ганбат", LastName: "Дорж", Phone: "99334455", Email: strPtr("ganbat@vegete.mn"), Certification: "NASM-CPT, Boxing A", Specialty: "Бокс, Кикбоксинг", BranchID: branches[1].ID, Salary: 1900000},
		{FirstName: "Оюунчимэг", LastName: "Нямдорж", Phone: "99445566", Email: strPtr("oyunaa@vegete.mn"), Certification: "ACE-CPT, Spinning", Specialty: "Кардио, Спиннинг", BranchID: branches[1].ID, Salary: 1700000},
		{FirstName: "Тэмүүлэн", LastName: "Жаргалсайхан", Phone: "99556677", Email: strPtr("temuulen@vegete.mn"), Certification: "NASM-CPT, CSCS", Specialty: "Хүч чадал, Бодибилдинг", BranchID: branches[2].ID, Salary: 1800000},
		{FirstName: "Энхжин", LastName: "Мөнхбат", Phone: "99667788", Email: strPtr("enkhjin@vegete.mn"), Certification: "ACE-CPT, Pilates", Specialty: "Пилатес, Уян хатан", BranchID: branches[2].ID, Salary: 1600000},
	}
	for i := range trainers {
		trainers[i].IsActive = true
		if err := DB.Create(&trainers[i]).Error; err != nil {
			log.Fatalf("Дасгалжуулагч үүсгэж чадсангүй: %v", err)
		}
	}

	courses := []models.Course{
		{Title: "CrossFit", Description: "Өндөр эрчимтэй интервал дасгалуудыг хослуулсан функциональ фитнесс хөтөлбөр. Жин өргөлт, гимнастик, кардио зэрэг олон төрлийн дасгалуудыг хамарна. Бие бялдрын бүх чанарыг хөгжүүлнэ.", Icon: "Zap", Difficulty: "Дунд - Ахисан", Duration: "60 мин", Schedule: "Даваа, Лхагва, Баасан", Color: "hsl(0 72% 51%)", SortOrder: 1},
		{Title: "Хүч чадлын бэлтгэл", Description: "Чөлөөт жин, тоног төхөөрөмж ашиглан булчингийн хүч, тэсвэр, хэмжээг нэмэгдүүлэх зорилготой хөтөлбөр. Хувийн зорилгод тохирсон дасгалын төлөвлөгөөг бий болгоно.", Icon: "Dumbbell", Difficulty: "Бүх түвшин", Duration: "75 мин", Schedule: "Мягмар, Пүрэв, Бямба", Color: "hsl(25 90% 48%)", SortOrder: 2},
		{Title: "Бокс & Кикбоксинг", Description: "Мэргэжлийн боксын дасгалжуулагчтай хамтран тулааны урлагийн техник, хүч чадал, хурд, рефлексийг хөгжүүлэх хичээлүүд. Стрессийг тайлах хамгийн үр дүнтэй арга.", Icon: "Target", Difficulty: "Дунд", Duration: "60 мин", Schedule: "Даваа, Лхагва, Баасан", Color: "hsl(0 72% 51%)", SortOrder: 3},
		{Title: "Функциональ дасгал", Description: "Өдөр тутмын хөдөлгөөнийг сайжруулах зорилготой, бие бүрэн хөдөлгөөнт дасгалуудын хөтөлбөр. Тэнцвэр, уян хатан, координаци болон хүч чадлыг зэрэг хөгжүүлнэ.", Icon: "Flame", Difficulty: "Бүх түвшин", Duration: "50 мин", Schedule: "Даваа - Баасан", Color: "hsl(25 90% 48%)", SortOrder: 4},
		{Title: "Йог & Пилатес", Description: "Бие сэтгэлийн тэнцвэрийг олоход туслах, уян хатан чанарыг хөгжүүлэх, стрессийг бууруулах зорилготой хичээлүүд. Виньяса, хатха, инь йогийн хэв маягууд.", Icon: "Heart", Difficulty: "Анхан шат", Duration: "60 мин", Schedule: "Мягмар, Пүрэв, Бямба", Color: "hsl(142 60% 40%)", SortOrder: 5},
		{Title: "Спиннинг / Кардио", Description: "Дугуйн дасгал дээр суурилсан өндөр эрчимтэй кардио хичээл. Зүрхний булчин, тэсвэр хатуужлыг хөгжүүлж, өөхийг шатаах хамгийн хурдан арга.", Icon: "Bike", Difficulty: "Бүх түвшин", Duration: "45 мин", Schedule: "Даваа - Баасан", Color: "hsl(217 70% 50%)", SortOrder: 6},
		{Title: "HIIT", Description: "Өндөр эрчимтэй интервал бэлтгэл. Богино хугацаанд хамгийн их калори шатааж, бодисын солилцоог идэвхжүүлэх зорилготой дасгалуудын цуврал.", Icon: "Wind", Difficulty: "Ахисан", Duration: "30 мин", Schedule: "Лхагва, Баасан", Color: "hsl(0 72% 51%)", SortOrder: 7},
		{Title: "Табата", Description: "20 секунд дасгал, 10 секунд амрах зарчмаар явагддаг 4 минутын тойргуудаас бүрдсэн өндөр эрчимтэй бэлтгэлийн хөтөлбөр.", Icon: "Timer", Difficulty: "Дунд - Ахисан", Duration: "40 мин", Schedule: "Мягмар, Пүрэв", Color: "hsl(280 55% 50%)", SortOrder: 8},
	}
	for i := range courses {
		courses[i].IsActive = true
		if err := DB.Create(&courses[i]).Error; err != nil {
			log.Fatalf("Хичээл үүсгэж чадсангүй: %v", err)
		}
	}

	members := []models.Member{
		{FirstName: "Мөнхбат", LastName: "Дэлгэрмаа", Phone: "88001122", Email: strPtr("munkh@mail.mn"), MembershipType: models.MembershipPremium, BranchID: branches[0].ID, TrainerID: &trainers[0].ID, MonthlyFee: 250000},
		{FirstName: "Цэцэгмаа", LastName: "Батцэцэг", Phone: "88112233", MembershipType: models.MembershipBasic, BranchID: branches[0].ID, TrainerID: &trainers[1].ID, MonthlyFee: 150000},
		{FirstName: "Баатар", LastName: "Энхбаяр", Phone: "88223344", MembershipType: models.MembershipAthlete, BranchID: branches[0].ID, TrainerID: &trainers[0].ID, MonthlyFee: 400000},
		{FirstName: "Дэлгэр", LastName: "Алтансүх", Phone: "88334455", Email: strPtr("delger@mail.mn"), MembershipType: models.MembershipPremium, BranchID: branches[0].ID, MonthlyFee: 250000},
		{FirstName: "Сүхбат", LastName: "Ганзориг", Phone: "88445566", MembershipType: models.MembershipBasic, BranchID: branches[0].ID, MonthlyFee: 150000},
		{FirstName: "Нарантуяа", LastName: "Мягмар", Phone: "88556677", MembershipType: models.MembershipPremium, BranchID: branches[1].ID, TrainerID: &trainers[2].ID, MonthlyFee: 250000},
		{FirstName: "Болдбаатар", LastName: "Эрдэнэбат", Phone: "88667788", MembershipType: models.MembershipBasic, BranchID: branches[1].ID, TrainerID: &trainers[3].ID, MonthlyFee: 150000},
		{FirstName: "Анужин", LastName: "Батжаргал", Phone: "88778899", Email: strPtr("anujin@mail.mn"), MembershipType: models.MembershipAthlete, BranchID: branches[1].ID, TrainerID: &trainers[2].ID, MonthlyFee: 400000},
		{FirstName: "Ганцэцэг", LastName: "Дашдорж", Phone: "88889900", MembershipType: models.MembershipBasic, BranchID: branches[1].ID, MonthlyFee: 150000},
		{FirstName: "Хүслэн", LastName: "Бямбадорж", Phone: "88990011", MembershipType: models.MembershipPremium, BranchID: branches[1].ID, MonthlyFee: 250000},
		{FirstName: "Номин", LastName: "Мөнхсайхан", Phone: "88001133", Email: strPtr("nomin@mail.mn"), MembershipType: models.MembershipBasic, BranchID: branches[2].ID, TrainerID: &trainers[4].ID, MonthlyFee: 150000},
		{FirstName: "Тэмүүжин", LastName: "Батсүх", Phone: "88112244", MembershipType: models.MembershipAthlete, BranchID: branches[2].ID, TrainerID: &trainers[4].ID, MonthlyFee: 400000},
		{FirstName: "Сайнбилэг", LastName: "Алтангэрэл", Phone: "88223355", MembershipType: models.MembershipPremium, BranchID: branches[2].ID, TrainerID: &trainers[5].ID, MonthlyFee: 250000},
		{FirstName: "Одгэрэл", LastName: "Чулуунбаатар", Phone: "88334466", MembershipType: models.MembershipBasic, BranchID: branches[2].ID, MonthlyFee: 150000},
		{FirstName: "Мандах", LastName: "Гантулга", Phone: "88445577", MembershipType: models.MembershipBasic, BranchID: branches[2].ID, MonthlyFee: 150000, MembershipStatus: models.StatusSuspended},
		{FirstName: "Цэрэндулам", LastName: "Наранбат", Phone: "88556688", MembershipType: models.MembershipPremium, BranchID: branches[0].ID, MonthlyFee: 250000, MembershipStatus: models.StatusExpired},
		{FirstName: "Баярсайхан", LastName: "Цэнд-Аюуш", Phone: "88667799", MembershipType: models.MembershipBasic, BranchID: branches[1].ID, MonthlyFee: 150000, MembershipStatus: models.StatusSuspended},
		{FirstName: "Алтанцэцэг", LastName: "Батбаяр", Phone: "88778800", MembershipType: models.MembershipAthlete, BranchID: branches[0].ID, MonthlyFee: 400000},
	}
	for i := range members {
		if members[i].MembershipStatus == "" {
			members[i].MembershipStatus = models.StatusActive
		}
		if err := DB.Create(&members[i]).Error; err != nil {
			log.Fatalf("Гишүүн үүсгэж чадсангүй: %v", err)
		}
	}

	paymentCount := 0
	for month := 1; month <= 2; month++ {
		for i := range members {
			if members[i].MembershipStatus != models.StatusActive {
				continue
			}
			p := models.Payment{
				MemberID: members[i].ID,
				Amount:   members[i].MonthlyFee,
				Month:    strconv.Itoa(month),
				Year:     2026,
				BranchID: members[i].BranchID,
				Status:   "paid",
			}
			if err := DB.Create(&p).Error; err != nil {
				log.Fatalf("Төлбөр үүсгэж чадсангүй: %v", err)
			}
			paymentCount++
		}
	}

	attendanceCount := 0
	for i := range members[:10] {
		for d := 0; d < 5; d++ {
			a := models.Attendance{
				MemberID: members[i].ID,
				BranchID: members[i].BranchID,
			}
			if err := DB.Create(&a).Error; err != nil {
				log.Fatalf("Ирц үүсгэж чадсангүй: %v", err)
			}
			attendanceCount++
		}
	}

	log.Printf("Database seeded: %d branches, %d trainers, %d courses, %d members, %d payments, %d attendance rows",
		len(branches), len(trainers), len(courses), len(members), paymentCount, attendanceCount)
}

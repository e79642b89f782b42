package storage

import (
	"fmt"

	"vegete-backend/internal/models"
)

// NameIndex: нэг хүсэлтийн хүрээнд баригдах id→нэр толь. Жижиг хүснэгтийг
// бүтнээр нь уншиж байгуулна; хадгалагдахгүй, дараагийн хүсэлтэд дахин үүснэ.
type NameIndex map[string]string

// Name: өгөгдсөн id-д харгалзах нэр, олдохгүй бол "-".
func (ix NameIndex) Name(id string) string {
	if n, ok := ix[id]; ok {
		return n
	}
	return "-"
}

func BranchNameIndex(branches []models.Branch) NameIndex {
	ix := make(NameIndex, len(branches))
	for _, b := range branches {
		ix[b.ID] = b.Name
	}
	return ix
}

// MemberNameIndex: гишүүний нэрийг "овог нэр" хэлбэрээр индекслэнэ.
func MemberNameIndex(members []models.Member) NameIndex {
	ix := make(NameIndex, len(members))
	for _, m := range members {
		ix[m.ID] = fmt.Sprintf("%s %s", m.LastName, m.FirstName)
	}
	return ix
}

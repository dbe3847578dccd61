package store

// Seed ids referenced by tests and by the credential table of the auth stub.
const (
	SeedAdminID = "mock-admin-id"
	SeedStaffID = "mock-staff-id"
)

// seedTables returns freshly built sample rows for every table.
func seedTables() map[Table][]Record {
	return map[Table][]Record{
		TableUsers: {
			{
				"id":         SeedAdminID,
				"email":      "admin@salon.com",
				"name":       "管理者",
				"role":       "admin",
				"active":     true,
				"created_at": "2024-01-01T00:00:00.000Z",
			},
			{
				"id":         SeedStaffID,
				"email":      "staff@salon.com",
				"name":       "スタッフ",
				"role":       "staff",
				"active":     true,
				"created_at": "2024-01-01T00:00:00.000Z",
			},
		},
		TableClients: {
			{
				"id":               "client-1",
				"name":             "田中 花子",
				"contact":          "090-1234-5678",
				"notes":            "アレルギー: なし\n希望施術: 痩身・ボディケア\n目標: ウエスト-5cm",
				"primary_staff_id": SeedStaffID,
				"created_at":       "2024-01-15T00:00:00.000Z",
				"staff":            Record{"name": "スタッフ"},
			},
			{
				"id":               "client-2",
				"name":             "佐藤 美咲",
				"contact":          "misaki@example.com",
				"notes":            "下半身のむくみが気になる\n希望施術: リンパドレナージュ中心",
				"primary_staff_id": SeedAdminID,
				"created_at":       "2024-01-20T00:00:00.000Z",
				"staff":            Record{"name": "管理者"},
			},
		},
		TableVisits: {
			{
				"id":           "visit-1",
				"client_id":    "client-1",
				"visit_date":   "2024-01-25",
				"service_menu": "痩身施術",
				"notes":        "体重測定後、キャビテーションとリンパドレナージュを実施。むくみが改善され、ウエスト周りがスッキリした様子。次回も同じメニューで継続予定。",
				"created_by":   SeedStaffID,
				"created_at":   "2024-01-25T10:00:00.000Z",
				"client":       Record{"name": "田中 花子"},
				"staff":        Record{"name": "スタッフ"},
			},
			{
				"id":           "visit-2",
				"client_id":    "client-2",
				"visit_date":   "2024-01-28",
				"service_menu": "ボディマッサージ",
				"notes":        "リラックス効果抜群。肩こりが改善。",
				"created_by":   SeedAdminID,
				"created_at":   "2024-01-28T14:00:00.000Z",
				"client":       Record{"name": "佐藤 美咲"},
				"staff":        Record{"name": "管理者"},
			},
		},
		TableMeasurements: {
			{
				"id":          "measurement-1",
				"client_id":   "client-1",
				"type":        "weight",
				"value":       55.5,
				"measured_at": "2024-01-15T00:00:00.000Z",
				"created_by":  SeedStaffID,
				"client":      Record{"name": "田中 花子"},
			},
			{
				"id":          "measurement-2",
				"client_id":   "client-1",
				"type":        "weight",
				"value":       54.8,
				"measured_at": "2024-01-22T00:00:00.000Z",
				"created_by":  SeedStaffID,
				"client":      Record{"name": "田中 花子"},
			},
			{
				"id":          "measurement-3",
				"client_id":   "client-1",
				"type":        "weight",
				"value":       54.2,
				"measured_at": "2024-01-29T00:00:00.000Z",
				"created_by":  SeedStaffID,
				"client":      Record{"name": "田中 花子"},
			},
		},
		TableAuditLogs: {},
	}
}

package visit

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/salon-karte/internal/audit"
	"github.com/BruksfildServices01/salon-karte/internal/httperr"
	"github.com/BruksfildServices01/salon-karte/internal/infra/repository"
	"github.com/BruksfildServices01/salon-karte/internal/store"
)

func TestCreateVisitByActor(t *testing.T) {
	s := store.New()
	d := audit.NewDispatcher(audit.New(s), 16)
	t.Cleanup(d.Close)
	uc := NewCreateVisit(repository.NewVisitStoreRepository(s), repository.NewClientStoreRepository(s), d)

	v, err := uc.Execute(context.Background(), VisitInput{
		ActorID:     store.SeedAdminID,
		ClientID:    "client-2",
		VisitDate:   "2024-02-03",
		ServiceMenu: "ハイフ",
		Notes:       "初回",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if v.CreatedBy != store.SeedAdminID || v.Staff == nil || v.Staff.Name != "管理者" {
		t.Fatalf("author not recorded: %+v", v)
	}
	if v.Client == nil || v.Client.Name != "佐藤 美咲" {
		t.Fatalf("client not resolved: %+v", v.Client)
	}
}

func TestCreateVisitValidates(t *testing.T) {
	s := store.New()
	d := audit.NewDispatcher(audit.New(s), 16)
	t.Cleanup(d.Close)
	uc := NewCreateVisit(repository.NewVisitStoreRepository(s), repository.NewClientStoreRepository(s), d)
	ctx := context.Background()

	for _, tc := range []struct {
		in   VisitInput
		code string
	}{
		{VisitInput{ClientID: "client-1", VisitDate: "2024/02/03", ServiceMenu: "EMS"}, "invalid_visit_date"},
		{VisitInput{ClientID: "client-1", VisitDate: "2024-02-03", ServiceMenu: "ネイル"}, "invalid_service_menu"},
		{VisitInput{ClientID: "client-9", VisitDate: "2024-02-03", ServiceMenu: "EMS"}, "client_not_found"},
	} {
		if _, err := uc.Execute(ctx, tc.in); !httperr.IsBusiness(err, tc.code) {
			t.Fatalf("%+v: expected %s, got %v", tc.in, tc.code, err)
		}
	}
	if s.Len(store.TableVisits) != 2 {
		t.Fatalf("rejected visits were stored")
	}
}

func TestUpdateVisit(t *testing.T) {
	s := store.New()
	d := audit.NewDispatcher(audit.New(s), 16)
	t.Cleanup(d.Close)
	uc := NewUpdateVisit(repository.NewVisitStoreRepository(s), d)
	ctx := context.Background()

	in := VisitInput{ActorID: store.SeedAdminID, VisitDate: "2024-01-26", ServiceMenu: "EMS", Notes: "変更"}
	if err := uc.Execute(ctx, "visit-1", in); err != nil {
		t.Fatalf("update: %v", err)
	}
	row, _ := s.From(store.TableVisits).Eq("id", "visit-1").Single()
	if row["service_menu"] != "EMS" || row["created_by"] != store.SeedStaffID {
		t.Fatalf("unexpected row %v", row)
	}

	if err := uc.Execute(ctx, "visit-404", in); !httperr.IsBusiness(err, "visit_not_found") {
		t.Fatalf("expected visit_not_found, got %v", err)
	}
}

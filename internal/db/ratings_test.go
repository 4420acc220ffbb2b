package db

import (
	"context"
	"testing"

	"github.com/astrochat/astrochat/internal/types"
)

func TestRatingStoreSubmitAndList(t *testing.T) {
	ctx := context.Background()
	rs := NewRatingStore(openTestDB(t))

	ratings := []types.SessionRating{
		{ID: "1", Session: "Astrologer Vikram", Stars: 3, SubmittedAt: 1000},
		{ID: "2", Session: "Astrologer Vikram", Stars: 5, SubmittedAt: 3000},
		{ID: "3", Session: "Astrologer Meera", Stars: 4, SubmittedAt: 2000},
	}
	for _, r := range ratings {
		if err := rs.SubmitRating(ctx, r); err != nil {
			t.Fatalf("submit %s: %v", r.ID, err)
		}
	}

	all, err := rs.ListRatings(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 ratings, got %d", len(all))
	}
	if all[0].ID != "2" || all[1].ID != "3" || all[2].ID != "1" {
		t.Fatalf("expected newest first, got %+v", all)
	}

	limited, err := rs.ListRatings(ctx, 1)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 1 || limited[0] != ratings[1] {
		t.Fatalf("unexpected limited result: %+v", limited)
	}
}

func TestRatingStoreRejectsOutOfRangeStars(t *testing.T) {
	rs := NewRatingStore(openTestDB(t))
	for _, stars := range []int{0, 6} {
		err := rs.SubmitRating(context.Background(), types.SessionRating{ID: "x", Session: "s", Stars: stars, SubmittedAt: 1})
		if err == nil {
			t.Fatalf("expected error for %d stars", stars)
		}
	}
}

func TestRatingStoreDuplicateID(t *testing.T) {
	ctx := context.Background()
	rs := NewRatingStore(openTestDB(t))
	r := types.SessionRating{ID: "dup", Session: "s", Stars: 2, SubmittedAt: 1}
	if err := rs.SubmitRating(ctx, r); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := rs.SubmitRating(ctx, r); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestRatingStoreAverageStars(t *testing.T) {
	ctx := context.Background()
	rs := NewRatingStore(openTestDB(t))

	avg, count, err := rs.AverageStars(ctx, "")
	if err != nil {
		t.Fatalf("average empty: %v", err)
	}
	if avg != 0 || count != 0 {
		t.Fatalf("expected empty average, got %v/%d", avg, count)
	}

	for i, stars := range []int{2, 5} {
		r := types.SessionRating{ID: string(rune('a' + i)), Session: "Astrologer Vikram", Stars: stars, SubmittedAt: int64(i)}
		if err := rs.SubmitRating(ctx, r); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	if err := rs.SubmitRating(ctx, types.SessionRating{ID: "z", Session: "Other", Stars: 1, SubmittedAt: 9}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	avg, count, err = rs.AverageStars(ctx, "Astrologer Vikram")
	if err != nil {
		t.Fatalf("average: %v", err)
	}
	if avg != 3.5 || count != 2 {
		t.Fatalf("expected 3.5 over 2, got %v over %d", avg, count)
	}
}

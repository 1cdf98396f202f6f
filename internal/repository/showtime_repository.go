package repository

import (
    "context"
    "errors"
    "fmt"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"

    "github.com/cinemapro/booking-api/internal/model"
)

// showtimeDoc mirrors the showtimes collection.  One document exists per
// showtime key; it is created lazily by the first merge write.  Seats
// are stored as canonical labels ("D2") so the records stay readable in
// the store.
type showtimeDoc struct {
    Key      model.ShowtimeKey `bson:"_id"`
    Occupied []string          `bson:"occupied_seats"`
}

// ShowtimeRepo provides read and merge access to per-showtime occupancy
// records.  It implements booking.OccupancyStore.
type ShowtimeRepo struct {
    collection *mongo.Collection
}

// NewShowtimeRepo returns a ShowtimeRepo over the given database.
func NewShowtimeRepo(db *mongo.Database) *ShowtimeRepo {
    return &ShowtimeRepo{collection: db.Collection("showtimes")}
}

// Fetch reads the occupancy record for a showtime.  A missing document
// resolves to an empty occupancy set.  Seat labels that fail to parse
// are reported as errors rather than dropped, since silently shrinking
// the occupancy set would let users select taken seats.
func (r *ShowtimeRepo) Fetch(ctx context.Context, key model.ShowtimeKey) (model.ShowtimeRecord, error) {
    var doc showtimeDoc
    err := r.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
    if err != nil {
        if errors.Is(err, mongo.ErrNoDocuments) {
            return model.EmptyShowtimeRecord(), nil
        }
        return model.ShowtimeRecord{}, fmt.Errorf("fetch showtime %s: %w", key, err)
    }
    rec := model.EmptyShowtimeRecord()
    for _, label := range doc.Occupied {
        id, perr := model.ParseSeatID(label)
        if perr != nil {
            return model.ShowtimeRecord{}, fmt.Errorf("showtime %s holds malformed seat %q", key, label)
        }
        rec.Occupied[id] = struct{}{}
    }
    return rec, nil
}

// MergeOccupied unions the seats into the record's occupancy set with an
// upserted $addToSet, creating the document when absent.  The update is
// additive only: members already present stay and duplicates collapse,
// so concurrent commits from other clients are never overwritten.
func (r *ShowtimeRepo) MergeOccupied(ctx context.Context, key model.ShowtimeKey, seats []model.SeatID) error {
    if len(seats) == 0 {
        return nil
    }
    labels := model.SeatLabels(seats)
    update := bson.M{
        "$addToSet": bson.M{
            "occupied_seats": bson.M{"$each": labels},
        },
    }
    _, err := r.collection.UpdateOne(ctx, bson.M{"_id": key}, update, options.Update().SetUpsert(true))
    if err != nil {
        return fmt.Errorf("merge occupancy for %s: %w", key, err)
    }
    return nil
}

package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thhaokip/school-management/app/models"
)

func TestSaveSchoolProfileAlwaysLandsOnRowOne(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// repeated saves upsert against the same fixed key
	for i := 0; i < 2; i++ {
		mock.ExpectQuery(`INSERT INTO school_profile`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "updated_at"}).AddRow(1, time.Now()))
	}

	p := &models.SchoolProfile{
		Name: "Sunrise Public School", Address: "12 Lake Road", City: "Imphal",
		State: "Manipur", ZipCode: "795001", Phone: "+91 385 0000", Email: "office@sunrise.edu",
	}
	require.NoError(t, SaveSchoolProfile(db, p))
	assert.Equal(t, "1", p.ID)

	p.Name = "Sunrise Public School (Senior Wing)"
	require.NoError(t, SaveSchoolProfile(db, p))
	assert.Equal(t, "1", p.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateFeeHeadReplacesClassMappings(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE fee_heads SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM fee_class_mapping`).
		WithArgs("f-1").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`INSERT INTO fee_class_mapping`).
		WithArgs("f-1", "c-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO fee_class_mapping`).
		WithArgs("f-1", "c-2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	f := &models.FeeHead{
		ID: "f-1", Name: "Tuition Fee", Amount: 1500,
		IsActive: true, ClassIDs: []string{"c-1", "c-2"},
	}
	require.NoError(t, UpdateFeeHead(db, f))
	assert.NoError(t, mock.ExpectationsWereMet())
}

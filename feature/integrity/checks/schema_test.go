package checks

import (
	"path/filepath"
	"regexp"
	"testing"

	"layout-catalog/core/database"
	"layout-catalog/feature/layouts/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil, &models.Category{})
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_NotAModel(t *testing.T) {
	db, _ := setupMockDB(t)
	_, err := CheckSchema(db, 42)
	assert.Error(t, err)
}

func TestCheckSchema_MissingColumn(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("id", "bigint unsigned", "NO", "PRI", nil, "auto_increment")
	rows.AddRow("slug", "varchar(191)", "NO", "UNI", nil, "")
	rows.AddRow("title", "varchar(255)", "YES", "", nil, "")
	rows.AddRow("description", "text", "YES", "", nil, "")
	rows.AddRow("ordinal", "bigint", "YES", "", nil, "")

	mock.ExpectQuery("SHOW COLUMNS FROM `page_template_categories`").WillReturnRows(rows)

	report, err := CheckSchema(db, &models.Category{})
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl, ok := report.Tables["page_template_categories"]
	require.True(t, ok)
	assert.Equal(t, "error", tbl.Status)
	assert.Equal(t, []string{"emoji"}, tbl.MissingColumns)
	assert.Empty(t, tbl.TypeMismatches)
}

func TestCheckSchema_TypeMismatch(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("id", "bigint unsigned", "NO", "PRI", nil, "")
	rows.AddRow("slug", "varchar(191)", "NO", "UNI", nil, "")
	rows.AddRow("title", "varchar(255)", "YES", "", nil, "")
	rows.AddRow("description", "varchar(64)", "YES", "", nil, "") // Expect text
	rows.AddRow("emoji", "varchar(32)", "YES", "", nil, "")
	rows.AddRow("ordinal", "bigint", "YES", "", nil, "")

	mock.ExpectQuery("SHOW COLUMNS FROM `page_template_categories`").WillReturnRows(rows)

	report, err := CheckSchema(db, &models.Category{})
	require.NoError(t, err)

	tbl := report.Tables["page_template_categories"]
	require.Len(t, tbl.TypeMismatches, 1)
	assert.Regexp(t, regexp.MustCompile(`description: expected text, got varchar\(64\)`), tbl.TypeMismatches[0])
}

func TestCheckSchema_InspectFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `page_template_layouts`").WillReturnError(assert.AnError)

	report, err := CheckSchema(db, models.Layout{})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "page_template_layouts")
}

func TestCheckSchema_MigratedSQLite(t *testing.T) {
	db, err := database.Connect(database.Config{
		Driver: database.DriverSQLite,
		Name:   filepath.Join(t.TempDir(), "schema.db"),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Layout{}))

	report, err := CheckSchema(db, &models.Category{}, &models.Layout{})
	require.NoError(t, err)
	assert.True(t, report.Matched, "%+v", report)
	assert.Len(t, report.Tables, 2)
}

func TestCheckSchema_UnmigratedSQLite(t *testing.T) {
	db, err := database.Connect(database.Config{
		Driver: database.DriverSQLite,
		Name:   filepath.Join(t.TempDir(), "empty.db"),
	})
	require.NoError(t, err)

	report, err := CheckSchema(db, &models.Layout{})
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Contains(t, report.Tables["page_template_layouts"].MissingColumns, "slug")
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "id", parseGormColumn("column:id;primaryKey"))
	assert.Equal(t, "slug", parseGormColumn("column:slug;size:191;uniqueIndex;not null"))
	assert.Equal(t, "", parseGormColumn("many2many:page_template_layout_categories;"))

	assert.Equal(t, "text", parseGormType("column:content;type:text"))
	assert.Equal(t, "", parseGormType("column:id"))
}

package forms

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/grocerly/grocerly/app/models"
	"github.com/grocerly/grocerly/app/repositories"
	"github.com/grocerly/grocerly/pkg/auth"
	"github.com/grocerly/grocerly/pkg/validate"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func TestStoreFormRules(t *testing.T) {
	errs := validate.Struct(&StoreForm{Title: "ab", Address: "x"})
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "address")

	errs = validate.Struct(&StoreForm{Title: "Corner Greens", Address: "12 Maple Street"})
	assert.Empty(t, errs)
}

func TestStoreFormApply(t *testing.T) {
	form := &StoreForm{Title: "Corner Greens", Address: "12 Maple Street"}
	var store models.GroceryStore
	form.Apply(&store)
	assert.Equal(t, "Corner Greens", store.Title)
	assert.Equal(t, "12 Maple Street", store.Address)
}

func TestItemFormStoreMustExist(t *testing.T) {
	db := newTestDB(t)
	stores := repositories.NewStoreRepository(db)

	form := &ItemForm{
		Name: "Bananas", Price: 0.59, Category: "Produce",
		PhotoURL: "https://x.com/b.jpg", StoreID: 999,
	}
	errs, err := form.Validate(stores)
	require.NoError(t, err)
	assert.Equal(t, "The selected store does not exist.", errs["store_id"])

	store := &models.GroceryStore{Title: "Corner Greens", Address: "12 Maple Street"}
	require.NoError(t, stores.Create(store))
	form.StoreID = store.ID

	errs, err = form.Validate(stores)
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestItemFormPriceFloor(t *testing.T) {
	errs := validate.Struct(&ItemForm{
		Name: "Bananas", Price: 0.001, Category: "Produce",
		PhotoURL: "https://x.com/b.jpg", StoreID: 1,
	})
	assert.Contains(t, errs, "price")
}

func TestSignUpFormUsernameTaken(t *testing.T) {
	db := newTestDB(t)
	users := repositories.NewUserRepository(db)
	require.NoError(t, users.Create(&models.User{Username: "demo", Password: "hash"}))

	form := &SignUpForm{Username: "demo", Password: "secret1"}
	errs, err := form.Validate(users)
	require.NoError(t, err)
	assert.Equal(t, "That username is taken. Please choose a different one.", errs["username"])

	form.Username = "fresh"
	errs, err = form.Validate(users)
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestLoginFormCredentials(t *testing.T) {
	db := newTestDB(t)
	users := repositories.NewUserRepository(db)

	hash, err := auth.HashPassword("hunter2!")
	require.NoError(t, err)
	require.NoError(t, users.Create(&models.User{Username: "demo", Password: hash}))

	// Unknown username.
	form := &LoginForm{Username: "ghost", Password: "whatever"}
	user, errs, err := form.Validate(users)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Equal(t, "No account found with that username.", errs["username"])

	// Wrong password.
	form = &LoginForm{Username: "demo", Password: "wrong"}
	user, errs, err = form.Validate(users)
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Equal(t, "Password is incorrect.", errs["password"])

	// Valid credentials.
	form = &LoginForm{Username: "demo", Password: "hunter2!"}
	user, errs, err = form.Validate(users)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Empty(t, errs)
	assert.Equal(t, "demo", user.Username)
}

package repositories

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/grocerly/grocerly/app/models"
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

func seedStore(t *testing.T, db *gorm.DB) *models.GroceryStore {
	t.Helper()
	store := &models.GroceryStore{Title: "Corner Greens", Address: "12 Maple Street"}
	require.NoError(t, db.Create(store).Error)
	return store
}

func TestStoreRepositoryCRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewStoreRepository(db)

	store := &models.GroceryStore{Title: "Corner Greens", Address: "12 Maple Street"}
	require.NoError(t, repo.Create(store))
	require.NotZero(t, store.ID)

	found, err := repo.Find(store.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Corner Greens", found.Title)

	found.Title = "Corner Greens & Co"
	require.NoError(t, repo.Update(found))

	again, err := repo.Find(store.ID)
	require.NoError(t, err)
	assert.Equal(t, "Corner Greens & Co", again.Title)

	all, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	ok, err := repo.Exists(store.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStoreRepositoryFindMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewStoreRepository(db)

	found, err := repo.Find(9999)
	require.NoError(t, err, "a missing row is not an error")
	assert.Nil(t, found)

	ok, err := repo.Exists(9999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreFindPreloadsItems(t *testing.T) {
	db := newTestDB(t)
	store := seedStore(t, db)
	require.NoError(t, db.Create(&models.GroceryItem{
		Name: "Bananas", Price: 0.59, Category: models.CategoryProduce,
		PhotoURL: "https://x.com/b.jpg", StoreID: store.ID,
	}).Error)

	found, err := NewStoreRepository(db).Find(store.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Bananas", found.Items[0].Name)
}

func TestItemRepositoryCRUD(t *testing.T) {
	db := newTestDB(t)
	store := seedStore(t, db)
	repo := NewItemRepository(db)

	item := &models.GroceryItem{
		Name: "Sourdough", Price: 4.25, Category: models.CategoryBakery,
		PhotoURL: "https://x.com/s.jpg", StoreID: store.ID,
	}
	require.NoError(t, repo.Create(item))

	found, err := repo.Find(item.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.NotNil(t, found.Store, "store is preloaded")
	assert.Equal(t, store.ID, found.Store.ID)

	found.Price = 4.50
	require.NoError(t, repo.Update(found))

	again, err := repo.Find(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.50, again.Price)

	missing, err := repo.Find(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepositoryFindByUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(&models.User{Username: "demo", Password: "hash"}))

	user, err := repo.FindByUsername("demo")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "demo", user.Username)

	missing, err := repo.FindByUsername("ghost")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUsernamesAreUnique(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(&models.User{Username: "demo", Password: "hash"}))
	err := repo.Create(&models.User{Username: "demo", Password: "other"})
	assert.Error(t, err, "duplicate username must be rejected by the unique index")
}

func TestShoppingListAllowsDuplicates(t *testing.T) {
	db := newTestDB(t)
	store := seedStore(t, db)
	users := NewUserRepository(db)

	user := &models.User{Username: "demo", Password: "hash"}
	require.NoError(t, users.Create(user))

	item := &models.GroceryItem{
		Name: "Bananas", Price: 0.59, Category: models.CategoryProduce,
		PhotoURL: "https://x.com/b.jpg", StoreID: store.ID,
	}
	require.NoError(t, db.Create(item).Error)

	require.NoError(t, users.AddToShoppingList(user.ID, item.ID))
	require.NoError(t, users.AddToShoppingList(user.ID, item.ID))

	entries, err := users.ShoppingList(user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2, "adding the same item twice keeps both rows")

	for _, e := range entries {
		require.NotNil(t, e.Item)
		assert.Equal(t, "Bananas", e.Item.Name)
		require.NotNil(t, e.Item.Store)
		assert.Equal(t, store.Title, e.Item.Store.Title)
	}
}

func TestShoppingListScopedToUser(t *testing.T) {
	db := newTestDB(t)
	store := seedStore(t, db)
	users := NewUserRepository(db)

	alice := &models.User{Username: "alice", Password: "hash"}
	bob := &models.User{Username: "bob", Password: "hash"}
	require.NoError(t, users.Create(alice))
	require.NoError(t, users.Create(bob))

	item := &models.GroceryItem{
		Name: "Peas", Price: 2.10, Category: models.CategoryFrozen,
		PhotoURL: "https://x.com/p.jpg", StoreID: store.ID,
	}
	require.NoError(t, db.Create(item).Error)

	require.NoError(t, users.AddToShoppingList(alice.ID, item.ID))

	aliceList, err := users.ShoppingList(alice.ID)
	require.NoError(t, err)
	assert.Len(t, aliceList, 1)

	bobList, err := users.ShoppingList(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, bobList)
}

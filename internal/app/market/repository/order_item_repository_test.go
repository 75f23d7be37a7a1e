package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shopnet/internal/app/market/entity"
)

// OrderItemRepositoryTestSuite тестовый suite для PostgreSQL repository
type OrderItemRepositoryTestSuite struct {
	suite.Suite
	db    *gorm.DB
	mock  sqlmock.Sqlmock
	repo  OrderItemRepository
	sqlDB *sql.DB
}

func TestOrderItemRepositorySuite(t *testing.T) {
	suite.Run(t, new(OrderItemRepositoryTestSuite))
}

func (s *OrderItemRepositoryTestSuite) SetupTest() {
	var err error
	s.sqlDB, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	dialector := postgres.New(postgres.Config{
		Conn:       s.sqlDB,
		DriverName: "postgres",
	})

	// TranslateError переводит нарушение уникального индекса в gorm.ErrDuplicatedKey
	s.db, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
	require.NoError(s.T(), err)

	s.repo = NewOrderItemRepository(s.db)
}

func (s *OrderItemRepositoryTestSuite) TearDownTest() {
	s.sqlDB.Close()
}

// ===================== Create Tests =====================

func (s *OrderItemRepositoryTestSuite) TestCreate_Success() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "order_items" ("order_id","product_info_id","quantity") VALUES ($1,$2,$3) RETURNING "id"`)).
		WithArgs(uint(5), uint(10), 2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	s.mock.ExpectCommit()

	item := &entity.OrderItem{OrderID: 5, ProductInfoID: 10, Quantity: 2}

	// Act
	err := s.repo.Create(ctx, item)

	// Assert
	s.NoError(err)
	s.Equal(uint(1), item.ID)

	s.NoError(s.mock.ExpectationsWereMet())
}

// Повторное добавление предложения нарушает индекс (order_id, product_info_id)
func (s *OrderItemRepositoryTestSuite) TestCreate_Duplicate() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "order_items"`)).
		WithArgs(uint(5), uint(10), 2).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	s.mock.ExpectRollback()

	item := &entity.OrderItem{OrderID: 5, ProductInfoID: 10, Quantity: 2}

	// Act
	err := s.repo.Create(ctx, item)

	// Assert
	s.ErrorIs(err, ErrItemAlreadyAdded)

	s.NoError(s.mock.ExpectationsWereMet())
}

// ===================== DeleteByIDs Tests =====================

func (s *OrderItemRepositoryTestSuite) TestDeleteByIDs_Success() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "order_items" WHERE order_id = $1 AND id IN ($2,$3)`)).
		WithArgs(uint(5), uint(1), uint(3)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	s.mock.ExpectCommit()

	// Act
	deleted, err := s.repo.DeleteByIDs(ctx, 5, []uint{1, 3})

	// Assert
	s.NoError(err)
	s.Equal(int64(2), deleted)

	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *OrderItemRepositoryTestSuite) TestDeleteByIDs_EmptyList() {
	ctx := context.Background()

	// Act
	deleted, err := s.repo.DeleteByIDs(ctx, 5, nil)

	// Assert
	s.NoError(err)
	s.Zero(deleted)

	s.NoError(s.mock.ExpectationsWereMet())
}

// ===================== UpdateQuantity Tests =====================

func (s *OrderItemRepositoryTestSuite) TestUpdateQuantity_Success() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "order_items" SET "quantity"=$1 WHERE order_id = $2 AND id = $3`)).
		WithArgs(4, uint(5), uint(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	s.mock.ExpectCommit()

	// Act
	rows, err := s.repo.UpdateQuantity(ctx, 5, 2, 4)

	// Assert
	s.NoError(err)
	s.Equal(int64(1), rows)

	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *OrderItemRepositoryTestSuite) TestUpdateQuantity_NotInOrder() {
	ctx := context.Background()

	s.mock.ExpectBegin()
	s.mock.ExpectExec(regexp.QuoteMeta(`UPDATE "order_items" SET "quantity"=$1 WHERE order_id = $2 AND id = $3`)).
		WithArgs(4, uint(5), uint(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	s.mock.ExpectCommit()

	// Act
	rows, err := s.repo.UpdateQuantity(ctx, 5, 99, 4)

	// Assert
	s.NoError(err)
	s.Zero(rows)

	s.NoError(s.mock.ExpectationsWereMet())
}

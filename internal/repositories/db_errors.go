package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// isDuplicateKeyError checks if the error corresponds to a MySQL/MariaDB
// duplicate key violation (error 1062). This lets unique constraint failures
// be translated into clear client-facing responses instead of generic 500
// errors.
func isDuplicateKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

package postgres

// ExecInTx runs a statement inside the open transaction of uow.
func ExecInTx(uow *GormUnitOfWork, sql string, args ...any) error {
	return uow.tx.Exec(sql, args...).Error
}

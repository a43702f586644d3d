package cmd

import (
	"context"

	departmentDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/department"
	employeeDatamodel "github.com/frahmantamala/employee-directory/internal/core/datamodel/employee"
	"github.com/jmoiron/sqlx"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("seed", func() {
	var (
		ctx    context.Context
		gormDB *gorm.DB
		db     *sqlx.DB
	)

	count := func(table string) int {
		GinkgoHelper()
		var n int
		Expect(db.Get(&n, "SELECT COUNT(*) FROM "+table)).To(Succeed())
		return n
	}

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		gormDB, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			DisableForeignKeyConstraintWhenMigrating: true,
			Logger:                                   logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		sqlDB, err := gormDB.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)

		Expect(gormDB.AutoMigrate(&departmentDatamodel.Department{}, &employeeDatamodel.Employee{})).To(Succeed())
		db = sqlx.NewDb(sqlDB, "sqlite3")
	})

	It("should insert every department with its employees", func() {
		Expect(seed(ctx, db, false)).To(Succeed())

		Expect(count("departments")).To(Equal(len(seedData)))
		Expect(count("employees")).To(Equal(3))

		var engineering int
		Expect(db.Get(&engineering, "SELECT COUNT(*) FROM employees e JOIN departments d ON d.id = e.department_id WHERE d.name = ?", "Engineering")).To(Succeed())
		Expect(engineering).To(Equal(2))
	})

	It("should skip departments that already exist", func() {
		Expect(seed(ctx, db, false)).To(Succeed())
		Expect(seed(ctx, db, false)).To(Succeed())

		Expect(count("departments")).To(Equal(len(seedData)))
		Expect(count("employees")).To(Equal(3))
	})

	It("should roll a department back when its employees cannot be stored", func() {
		Expect(gormDB.Migrator().DropTable(&employeeDatamodel.Employee{})).To(Succeed())

		Expect(seed(ctx, db, false)).NotTo(Succeed())
		Expect(count("departments")).To(BeZero())

		Expect(gormDB.AutoMigrate(&employeeDatamodel.Employee{})).To(Succeed())
		Expect(seed(ctx, db, false)).To(Succeed())
		Expect(count("departments")).To(Equal(len(seedData)))
		Expect(count("employees")).To(Equal(3))
	})
})

package layer

import (
	"go.uber.org/zap"

	"github.com/wippyai/vk-validation/diag"
	"github.com/wippyai/vk-validation/errors"
	"github.com/wippyai/vk-validation/vk"
)

func newSession(info *vk.InstanceCreateInfo, settings *Settings) *Session {
	s := &Session{
		Extensions: map[string]bool{},
		Callbacks:  diag.NewCallbacks(),
		History:    diag.NewHistory(settings.HistorySize),
	}
	if info == nil {
		return s
	}
	s.Extensions = extensionSet(info.EnabledExtensionCount, info.EnabledExtensionNames)
	if ai := info.ApplicationInfo; ai != nil {
		s.APIVersion = ai.APIVersion
		s.ApplicationName = ai.ApplicationName
		s.EngineName = ai.EngineName
	}
	vk.Walk(info.Next, func(_ int, e vk.Extension) bool {
		if dr, ok := e.(*vk.DebugReportCallbackCreateInfoEXT); ok && dr.Callback != nil {
			s.transient = append(s.transient, diag.Callback{Flags: dr.Flags, Fn: dr.Callback, UserData: dr.UserData})
		}
		return true
	})
	s.transientActive.Store(len(s.transient) > 0)
	return s
}

// CreateInstance validates the create info, forwards, and registers a
// session for the new instance.
func (l *Layer) CreateInstance(info *vk.InstanceCreateInfo, instance *vk.Instance) vk.Result {
	const op = "vkCreateInstance"
	sess := newSession(info, l.settings.Load())
	ctx := &Context{Session: sess}

	return l.invoke(ctx, Operation{
		Name: op,
		Params: func(c *Checker) {
			c.Required(root("pInstance"), instance != nil)
			p := root("pCreateInfo")
			if !c.Required(p, info != nil) {
				return
			}
			c.SType(p, info.SType, vk.StructureTypeInstanceCreateInfo)
			c.Chain(p, info.Next, vk.StructureTypeDebugReportCallbackCreateInfoEXT, vk.StructureTypeValidationFlagsEXT)
			c.Reserved(p.dot("flags"), info.Flags)
			if ai := info.ApplicationInfo; ai != nil {
				ap := p.dot("pApplicationInfo")
				c.SType(ap, ai.SType, vk.StructureTypeApplicationInfo)
				c.Chain(ap, ai.Next)
			}
			array(c, p.dot("enabledLayerCount"), p.dot("ppEnabledLayerNames"),
				info.EnabledLayerCount, info.EnabledLayerNames, false, true)
			array(c, p.dot("enabledExtensionCount"), p.dot("ppEnabledExtensionNames"),
				info.EnabledExtensionCount, info.EnabledExtensionNames, false, true)
		},
		Pre: func(c *Checker) {
			if info != nil {
				preCreateInstance(c, info)
			}
		},
		Track: func(r vk.Result) {
			sess.transientActive.Store(false)
			if r != vk.Success || instance == nil {
				return
			}
			sess.Instance = *instance
			ctx.Key = instance.Key
			if err := l.state.Register(ctx.Key, ctx); err != nil {
				panic(errors.Internal(op, "register session for key %#x: %v", uint64(ctx.Key), err))
			}
			l.log.Debug("session created",
				zap.String("op", op),
				zap.Uint64("key", uint64(ctx.Key)),
				zap.String("application", sess.ApplicationName),
				zap.String("api_version", vk.VersionString(sess.APIVersion)))
		},
	}, func() vk.Result {
		return l.next.CreateInstance(info, instance)
	})
}

func preCreateInstance(c *Checker, info *vk.InstanceCreateInfo) {
	p := root("pCreateInfo")
	if ai := info.ApplicationInfo; ai != nil {
		ap := p.dot("pApplicationInfo")
		c.String(ap.dot("pApplicationName"), ai.ApplicationName)
		c.String(ap.dot("pEngineName"), ai.EngineName)
		if ai.APIVersion != 0 && ai.APIVersion>>22 != 1 {
			c.Usage(ap.dot("apiVersion"), ai.APIVersion, "apiVersion %s names an unknown major version",
				vk.VersionString(ai.APIVersion))
		}
	}
	names := elems(info.EnabledLayerCount, info.EnabledLayerNames)
	for i, name := range names {
		c.String(p.dot("ppEnabledLayerNames").at(i), name)
	}
	names = elems(info.EnabledExtensionCount, info.EnabledExtensionNames)
	for i, name := range names {
		c.String(p.dot("ppEnabledExtensionNames").at(i), name)
	}

	cur := p
	vk.Walk(info.Next, func(_ int, e vk.Extension) bool {
		cur = cur.dot("pNext")
		switch ext := e.(type) {
		case *vk.DebugReportCallbackCreateInfoEXT:
			checkFlags(c, cur.dot("flags"), ext.Flags, false)
			c.Required(cur.dot("pfnCallback"), ext.Callback != nil)
		case *vk.ValidationFlagsEXT:
			checks := array(c, cur.dot("disabledValidationCheckCount"), cur.dot("pDisabledValidationChecks"),
				ext.DisabledValidationCheckCount, ext.DisabledValidationChecks, true, true)
			for i, v := range checks {
				c.Enum(cur.dot("pDisabledValidationChecks").at(i), v)
			}
		}
		return true
	})
}

// DestroyInstance forwards and removes the session and any connection the
// application failed to destroy.
func (l *Layer) DestroyInstance(instance vk.Instance) vk.Result {
	const op = "vkDestroyInstance"
	if instance.IsNull() {
		return vk.Success
	}
	ctx := l.sessionContext(op, instance.Key)
	ctx.Session.transientActive.Store(len(ctx.Session.transient) > 0)

	return l.invoke(ctx, Operation{
		Name:   op,
		Object: instance,
		Track: func(vk.Result) {
			err := l.state.Do(func(tx *Tx) error {
				for key := range ctx.Session.conns {
					l.log.Warn("device not destroyed before its instance",
						zap.String("op", op), zap.Uint64("key", uint64(key)))
					if err := tx.Unregister(key); err != nil {
						return err
					}
				}
				clear(ctx.Session.conns)
				return tx.Unregister(ctx.Key)
			})
			if err != nil {
				panic(errors.Internal(op, "unregister session for key %#x: %v", uint64(ctx.Key), err))
			}
			l.log.Debug("session destroyed", zap.String("op", op), zap.Uint64("key", uint64(ctx.Key)))
		},
	}, func() vk.Result {
		return l.next.DestroyInstance(instance)
	})
}

// EnumeratePhysicalDevices validates the count and output array.
func (l *Layer) EnumeratePhysicalDevices(instance vk.Instance, count *uint32, devices []vk.PhysicalDevice) vk.Result {
	const op = "vkEnumeratePhysicalDevices"
	ctx := l.sessionContext(op, instance.Key)
	return l.invoke(ctx, Operation{
		Name:   op,
		Object: instance,
		Params: func(c *Checker) {
			outArray(c, root("pPhysicalDeviceCount"), root("pPhysicalDevices"), count, devices)
		},
	}, func() vk.Result {
		return l.next.EnumeratePhysicalDevices(instance, count, devices)
	})
}
